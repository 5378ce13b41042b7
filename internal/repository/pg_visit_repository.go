package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// VisitRepository defines the persistence interface for page-view tracking.
type VisitRepository interface {
	Track(ctx context.Context, path string) error
	Count(ctx context.Context) (int, error)
}

// PgVisitRepository is the PostgreSQL implementation of VisitRepository.
type PgVisitRepository struct {
	pool *pgxpool.Pool
}

// NewPgVisitRepository creates a PgVisitRepository backed by the given pool.
func NewPgVisitRepository(pool *pgxpool.Pool) *PgVisitRepository {
	return &PgVisitRepository{pool: pool}
}

var _ VisitRepository = (*PgVisitRepository)(nil)

// Track records one page view.
func (r *PgVisitRepository) Track(ctx context.Context, path string) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO visits (path) VALUES ($1)`, path)
	return err
}

// Count returns the total number of recorded page views.
func (r *PgVisitRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM visits`).Scan(&n)
	return n, err
}
