// Package contactform is the public booking inquiry form.
package contactform

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/shutterfolio/backend/internal/model"
)

// Status messages shown under the form.
const (
	StatusSent   = "Message sent successfully!"
	StatusFailed = "Failed to send message. Please try again."
)

// Sender stores one contact message.
type Sender interface {
	SubmitContact(ctx context.Context, msg *model.ContactMessage) error
}

// ValidationError names the first required field left empty.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Fields are the form inputs.
type Fields struct {
	Name    string
	Email   string
	Phone   string
	Date    string
	Message string
}

// Form holds the inputs and the last status line.
type Form struct {
	sender Sender

	mu     sync.Mutex
	fields Fields
	status string
}

// New creates an empty form.
func New(sender Sender) *Form {
	return &Form{sender: sender}
}

// Set replaces the inputs.
func (f *Form) Set(fields Fields) {
	f.mu.Lock()
	f.fields = fields
	f.mu.Unlock()
}

// Fields returns the current inputs.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Status returns the last status line, "" before any submit.
func (f *Form) Status() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Validate checks that name, email and message are non-empty after trimming.
func (fl Fields) Validate() error {
	for _, c := range []struct{ name, value string }{
		{"name", fl.Name},
		{"email", fl.Email},
		{"message", fl.Message},
	} {
		if strings.TrimSpace(c.value) == "" {
			return &ValidationError{Field: c.name}
		}
	}
	return nil
}

// Submit validates the inputs and sends one message. A ValidationError
// sends nothing and leaves the status untouched. On success the inputs are
// cleared; on failure they are kept for another try.
func (f *Form) Submit(ctx context.Context) error {
	fields := f.Fields()
	if err := fields.Validate(); err != nil {
		return err
	}

	msg := &model.ContactMessage{
		Name:      strings.TrimSpace(fields.Name),
		Email:     strings.TrimSpace(fields.Email),
		Phone:     strings.TrimSpace(fields.Phone),
		Date:      strings.TrimSpace(fields.Date),
		Message:   strings.TrimSpace(fields.Message),
		CreatedAt: model.Now(),
	}
	err := f.sender.SubmitContact(ctx, msg)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		slog.Error("send contact message failed", "error", err)
		f.status = StatusFailed
		return err
	}
	f.fields = Fields{}
	f.status = StatusSent
	return nil
}
