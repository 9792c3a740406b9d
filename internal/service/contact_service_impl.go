package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/shutterfolio/backend/internal/model"
	"github.com/shutterfolio/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit trims the fields, checks the required ones and stamps CreatedAt
// with the current UTC time before persisting.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Phone = strings.TrimSpace(msg.Phone)
	msg.Date = strings.TrimSpace(msg.Date)
	msg.Message = strings.TrimSpace(msg.Message)

	switch {
	case msg.Name == "":
		return missing("name")
	case msg.Email == "":
		return missing("email")
	case msg.Message == "":
		return missing("message")
	}
	if utf8.RuneCountInString(msg.Message) > MaxMessageRunes {
		return &FieldError{Field: "message", Err: ErrMessageTooLong}
	}

	msg.CreatedAt = model.Now()
	return s.repo.Save(ctx, msg)
}

// List returns contact messages according to the pagination options.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx, opts)
}

// Delete removes a contact message.
func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
