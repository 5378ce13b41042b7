package service

import (
	"context"
	"errors"

	"github.com/ingcor/backend/internal/model"
)

// ErrTitleRequired is returned when a project is created or updated without a title.
var ErrTitleRequired = errors.New("service: project title required")

// ProjectService defines the business logic for the portfolio gallery.
type ProjectService interface {
	List(ctx context.Context, limit, offset int) ([]*model.Project, error)
	ListFeatured(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id string) error
}
