package service

import (
	"context"

	"github.com/ingcor/backend/internal/model"
	"github.com/ingcor/backend/internal/repository"
)

// StatsService records page views and aggregates the admin dashboard counters.
type StatsService interface {
	Track(ctx context.Context, path string) error
	Dashboard(ctx context.Context) (*model.DashboardStats, error)
}

type statsServiceImpl struct {
	projects repository.ProjectRepository
	contacts repository.ContactRepository
	visits   repository.VisitRepository
}

// NewStatsService creates a StatsService over the given repositories.
func NewStatsService(projects repository.ProjectRepository, contacts repository.ContactRepository, visits repository.VisitRepository) StatsService {
	return &statsServiceImpl{projects: projects, contacts: contacts, visits: visits}
}

// Track records one page view.
func (s *statsServiceImpl) Track(ctx context.Context, path string) error {
	return s.visits.Track(ctx, path)
}

// Dashboard collects the counters shown on the admin landing page.
func (s *statsServiceImpl) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	projects, err := s.projects.Count(ctx)
	if err != nil {
		return nil, err
	}
	messages, err := s.contacts.Count(ctx)
	if err != nil {
		return nil, err
	}
	unread, err := s.contacts.CountUnread(ctx)
	if err != nil {
		return nil, err
	}
	visits, err := s.visits.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &model.DashboardStats{
		Projects:       projects,
		Messages:       messages,
		UnreadMessages: unread,
		Visits:         visits,
	}, nil
}
