package service

import (
	"context"

	"github.com/ingcor/backend/internal/model"
	"github.com/ingcor/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Create stores a new contact message. New messages are always unread.
func (s *contactServiceImpl) Create(ctx context.Context, msg *model.ContactMessage) error {
	msg.Read = false
	return s.repo.Save(ctx, msg)
}

// List returns contact messages according to the given filter/pagination options.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx, opts)
}

// MarkRead flags a message as read.
func (s *contactServiceImpl) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

// Delete removes a message permanently.
func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
