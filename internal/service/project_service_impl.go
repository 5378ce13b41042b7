package service

import (
	"context"
	"strings"

	"github.com/ingcor/backend/internal/model"
	"github.com/ingcor/backend/internal/repository"
)

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

func (s *projectServiceImpl) List(ctx context.Context, limit, offset int) ([]*model.Project, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *projectServiceImpl) ListFeatured(ctx context.Context) ([]*model.Project, error) {
	return s.repo.ListFeatured(ctx)
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new project. The title is the only mandatory field.
func (s *projectServiceImpl) Create(ctx context.Context, project *model.Project) error {
	project.Title = strings.TrimSpace(project.Title)
	if project.Title == "" {
		return ErrTitleRequired
	}
	return s.repo.Create(ctx, project)
}

// Update rewrites an existing project.
func (s *projectServiceImpl) Update(ctx context.Context, project *model.Project) error {
	project.Title = strings.TrimSpace(project.Title)
	if project.Title == "" {
		return ErrTitleRequired
	}
	return s.repo.Update(ctx, project)
}

func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
