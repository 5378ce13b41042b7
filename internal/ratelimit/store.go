package ratelimit

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Store abstracts the durable key-value slot holding the submission record.
type Store interface {
	// Read deserializes the persisted record. A missing entry yields an
	// empty record and no error.
	Read() (Record, error)

	// Write persists the record, replacing any prior value.
	Write(Record) error
}

// FileStore keeps the record as a single JSON document on disk, e.g.
// {"timestamps":[1700000000000,1700000100000]}.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore persisting at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

var _ Store = (*FileStore)(nil)

// Read loads the record from disk. Missing or corrupt data yields an empty
// record: local state must never lock a user out permanently.
func (s *FileStore) Read() (Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Record{}, nil
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, nil
	}
	return r, nil
}

// Write persists the record as JSON, creating parent directories as needed.
func (s *FileStore) Write(r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
