package service

import (
	"context"
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// mockVisitRepository — in-memory stub for testing
// ---------------------------------------------------------------------------

type mockVisitRepository struct {
	trackFunc func(ctx context.Context, path string) error
	countFunc func(ctx context.Context) (int, error)
}

func (m *mockVisitRepository) Track(ctx context.Context, path string) error {
	if m.trackFunc != nil {
		return m.trackFunc(ctx, path)
	}
	return nil
}

func (m *mockVisitRepository) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

// ---------------------------------------------------------------------------
// Dashboard tests
// ---------------------------------------------------------------------------

func TestStatsService_Dashboard_AggregatesCounters(t *testing.T) {
	projects := &mockProjectRepository{
		countFunc: func(ctx context.Context) (int, error) { return 7, nil },
	}
	contacts := &mockContactRepository{
		countFunc:       func(ctx context.Context) (int, error) { return 12, nil },
		countUnreadFunc: func(ctx context.Context) (int, error) { return 4, nil },
	}
	visits := &mockVisitRepository{
		countFunc: func(ctx context.Context) (int, error) { return 321, nil },
	}
	svc := NewStatsService(projects, contacts, visits)

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Projects != 7 || stats.Messages != 12 || stats.UnreadMessages != 4 || stats.Visits != 321 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestStatsService_Dashboard_PropagatesError(t *testing.T) {
	contacts := &mockContactRepository{
		countFunc: func(ctx context.Context) (int, error) { return 0, errors.New("db down") },
	}
	svc := NewStatsService(&mockProjectRepository{}, contacts, &mockVisitRepository{})

	if _, err := svc.Dashboard(context.Background()); err == nil {
		t.Error("expected error propagated, got nil")
	}
}

func TestStatsService_Track_Forwards(t *testing.T) {
	var gotPath string
	visits := &mockVisitRepository{
		trackFunc: func(ctx context.Context, path string) error {
			gotPath = path
			return nil
		},
	}
	svc := NewStatsService(&mockProjectRepository{}, &mockContactRepository{}, visits)

	if err := svc.Track(context.Background(), "/proyectos"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/proyectos" {
		t.Errorf("expected path forwarded, got %q", gotPath)
	}
}
