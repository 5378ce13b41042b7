package service

import (
	"context"

	"github.com/ingcor/backend/internal/repository"
)

// SettingsService exposes the site's key-value configuration (contact info,
// hero image, social links) to the public site and the admin panel.
type SettingsService interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, settings map[string]string) error
}

type settingsServiceImpl struct {
	repo repository.SettingRepository
}

// NewSettingsService creates a SettingsService backed by the given repository.
func NewSettingsService(repo repository.SettingRepository) SettingsService {
	return &settingsServiceImpl{repo: repo}
}

func (s *settingsServiceImpl) GetAll(ctx context.Context) (map[string]string, error) {
	return s.repo.GetAll(ctx)
}

// Save upserts the given settings. Unknown keys are stored as-is: the admin
// panel owns the key vocabulary.
func (s *settingsServiceImpl) Save(ctx context.Context, settings map[string]string) error {
	return s.repo.UpsertMany(ctx, settings)
}
