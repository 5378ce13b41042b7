package repository

import (
	"context"

	"github.com/ingcor/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProjectRepository defines the persistence interface for portfolio projects.
type ProjectRepository interface {
	List(ctx context.Context, limit, offset int) ([]*model.Project, error)
	ListFeatured(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

const projectColumns = `id, title, COALESCE(description, ''), COALESCE(category, ''), COALESCE(image_url, ''), featured, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.ImageURL, &p.Featured, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &p, nil
}

// List returns projects newest first.
func (r *PgProjectRepository) List(ctx context.Context, limit, offset int) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ListFeatured returns featured projects newest first.
func (r *PgProjectRepository) ListFeatured(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE featured = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID returns one project or ErrNotFound.
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
}

// Create inserts a new row and populates ID and timestamps from RETURNING.
func (r *PgProjectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, category, image_url, featured)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5)
		 RETURNING id, created_at, updated_at`,
		project.Title, project.Description, project.Category, project.ImageURL, project.Featured,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

// Update rewrites all editable columns of an existing project.
func (r *PgProjectRepository) Update(ctx context.Context, project *model.Project) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE projects
		 SET title = $2, description = NULLIF($3, ''), category = NULLIF($4, ''),
		     image_url = NULLIF($5, ''), featured = $6, updated_at = NOW()
		 WHERE id = $1
		 RETURNING updated_at`,
		project.ID, project.Title, project.Description, project.Category, project.ImageURL, project.Featured,
	).Scan(&project.UpdatedAt)
	return mapNoRows(err)
}

// Delete removes a project permanently.
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of projects.
func (r *PgProjectRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n)
	return n, err
}
