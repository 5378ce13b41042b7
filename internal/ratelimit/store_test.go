package ratelimit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_MissingFileReturnsEmptyRecord(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "rate_limit.json"))

	r, err := s.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Timestamps) != 0 {
		t.Errorf("expected empty record, got %v", r.Timestamps)
	}
}

func TestFileStore_CorruptDataReturnsEmptyRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rate_limit.json")
	if err := os.WriteFile(path, []byte(`{"timestamps":[not json`), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)

	r, err := s.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Timestamps) != 0 {
		t.Errorf("expected corrupt data to yield empty record, got %v", r.Timestamps)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rate_limit.json")
	s := NewFileStore(path)

	want := Record{Timestamps: []int64{1_700_000_000_000, 1_700_000_100_000}}
	if err := s.Write(want); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := s.Read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(got.Timestamps) != 2 || got.Timestamps[0] != want.Timestamps[0] || got.Timestamps[1] != want.Timestamps[1] {
		t.Errorf("round trip mismatch: want %v, got %v", want.Timestamps, got.Timestamps)
	}
}

func TestFileStore_WriteReplacesPriorValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rate_limit.json")
	s := NewFileStore(path)

	_ = s.Write(Record{Timestamps: []int64{1, 2, 3}})
	_ = s.Write(Record{Timestamps: []int64{9}})

	got, _ := s.Read()
	if len(got.Timestamps) != 1 || got.Timestamps[0] != 9 {
		t.Errorf("expected replacement write, got %v", got.Timestamps)
	}
}
