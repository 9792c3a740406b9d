package service

import (
	"context"

	"github.com/shutterfolio/backend/internal/model"
)

// MaxMessageRunes is the longest contact message accepted.
const MaxMessageRunes = 5000

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and stores a new contact message. msg.ID and
	// msg.CreatedAt are populated by the implementation.
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// List returns contact messages newest first according to the given options.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)

	// Delete removes a message.
	Delete(ctx context.Context, id string) error
}
