package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingRepository defines the persistence interface for site settings,
// a flat key-value table the public site and admin panel both read.
type SettingRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	UpsertMany(ctx context.Context, settings map[string]string) error
}

// PgSettingRepository is the PostgreSQL implementation of SettingRepository.
type PgSettingRepository struct {
	pool *pgxpool.Pool
}

// NewPgSettingRepository creates a PgSettingRepository backed by the given pool.
func NewPgSettingRepository(pool *pgxpool.Pool) *PgSettingRepository {
	return &PgSettingRepository{pool: pool}
}

var _ SettingRepository = (*PgSettingRepository)(nil)

// GetAll returns every setting as a key→value map.
func (r *PgSettingRepository) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT key, value FROM site_settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		settings[k] = v
	}
	return settings, rows.Err()
}

// UpsertMany writes every given key/value pair in one transaction so the
// admin save is all-or-nothing.
func (r *PgSettingRepository) UpsertMany(ctx context.Context, settings map[string]string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for k, v := range settings {
		if _, err := tx.Exec(ctx,
			`INSERT INTO site_settings (key, value) VALUES ($1, $2)
			 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
			k, v,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
