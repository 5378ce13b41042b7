package service

import (
	"context"

	"github.com/ingcor/backend/internal/model"
)

// ContactService defines the business logic around stored contact messages.
// Create satisfies the submission pipeline's persister contract; the rest
// backs the admin inbox.
type ContactService interface {
	// Create stores a new contact message. msg.ID and CreatedAt are
	// populated by the implementation.
	Create(ctx context.Context, msg *model.ContactMessage) error

	// List returns contact messages according to the given options.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)

	// MarkRead flags a message as read.
	MarkRead(ctx context.Context, id string) error

	// Delete removes a message permanently.
	Delete(ctx context.Context, id string) error
}
