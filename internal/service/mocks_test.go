package service

import (
	"context"

	"github.com/shutterfolio/backend/internal/model"
	"github.com/shutterfolio/backend/pkg/identity"
)

// ---------------------------------------------------------------------------
// function-field stubs shared by the service tests
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	saveFunc   func(ctx context.Context, msg *model.ContactMessage) error
	listFunc   func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, msg)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockContactRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockPortfolioRepository struct {
	listFunc        func(ctx context.Context) ([]*model.PortfolioItem, error)
	listLimitedFunc func(ctx context.Context, n int) ([]*model.PortfolioItem, error)
	createFunc      func(ctx context.Context, item *model.PortfolioItem) error
	deleteFunc      func(ctx context.Context, id string) error
}

func (m *mockPortfolioRepository) List(ctx context.Context) ([]*model.PortfolioItem, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockPortfolioRepository) ListLimited(ctx context.Context, n int) ([]*model.PortfolioItem, error) {
	if m.listLimitedFunc != nil {
		return m.listLimitedFunc(ctx, n)
	}
	return nil, nil
}

func (m *mockPortfolioRepository) Create(ctx context.Context, item *model.PortfolioItem) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, item)
	}
	return nil
}

func (m *mockPortfolioRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockReviewRepository struct {
	listFunc   func(ctx context.Context) ([]*model.Review, error)
	createFunc func(ctx context.Context, review *model.Review) error
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockReviewRepository) List(ctx context.Context) ([]*model.Review, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockReviewRepository) Create(ctx context.Context, review *model.Review) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, review)
	}
	return nil
}

func (m *mockReviewRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockAdminRepository struct {
	findByEmailFunc func(ctx context.Context, email string) (*model.Admin, error)
	createFunc      func(ctx context.Context, admin *model.Admin) error
}

func (m *mockAdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockAdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, admin)
	}
	return nil
}

type mockIdentityClient struct {
	signInFunc func(ctx context.Context, email, password string) (*identity.Account, error)
}

func (m *mockIdentityClient) SignInWithPassword(ctx context.Context, email, password string) (*identity.Account, error) {
	if m.signInFunc != nil {
		return m.signInFunc(ctx, email, password)
	}
	return nil, nil
}
