package repository

import (
	"context"

	"github.com/shutterfolio/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// PortfolioRepository persists gallery items. There is no update: a
// correction is a delete followed by a create.
type PortfolioRepository interface {
	List(ctx context.Context) ([]*model.PortfolioItem, error)
	// ListLimited returns at most n items in the store's natural order.
	ListLimited(ctx context.Context, n int) ([]*model.PortfolioItem, error)
	// Create inserts item and populates item.ID from the store.
	Create(ctx context.Context, item *model.PortfolioItem) error
	Delete(ctx context.Context, id string) error
}

// ContactRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	// List returns messages ordered by created_at, newest first.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

// ReviewRepository persists testimonials.
type ReviewRepository interface {
	List(ctx context.Context) ([]*model.Review, error)
	Create(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id string) error
}

// AdminRepository stores dashboard accounts for the local auth provider.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	Create(ctx context.Context, admin *model.Admin) error
}
