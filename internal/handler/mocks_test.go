package handler

import (
	"context"

	"github.com/shutterfolio/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock services
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, msg *model.ContactMessage) error
	listFunc   func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockContactService) Submit(ctx context.Context, msg *model.ContactMessage) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, msg)
	}
	return nil
}

func (m *mockContactService) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockContactService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockPortfolioService struct {
	listFunc     func(ctx context.Context) ([]*model.PortfolioItem, error)
	featuredFunc func(ctx context.Context) ([]*model.PortfolioItem, error)
	createFunc   func(ctx context.Context, item *model.PortfolioItem) error
	deleteFunc   func(ctx context.Context, id string) error
}

func (m *mockPortfolioService) List(ctx context.Context) ([]*model.PortfolioItem, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockPortfolioService) Featured(ctx context.Context) ([]*model.PortfolioItem, error) {
	if m.featuredFunc != nil {
		return m.featuredFunc(ctx)
	}
	return nil, nil
}

func (m *mockPortfolioService) Create(ctx context.Context, item *model.PortfolioItem) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, item)
	}
	return nil
}

func (m *mockPortfolioService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockReviewService struct {
	listFunc   func(ctx context.Context) ([]*model.Review, error)
	createFunc func(ctx context.Context, review *model.Review) error
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockReviewService) List(ctx context.Context) ([]*model.Review, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockReviewService) Create(ctx context.Context, review *model.Review) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, review)
	}
	return nil
}

func (m *mockReviewService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockAuthService struct {
	signInFunc func(ctx context.Context, email, password string) (*model.Admin, error)
}

func (m *mockAuthService) SignIn(ctx context.Context, email, password string) (*model.Admin, error) {
	if m.signInFunc != nil {
		return m.signInFunc(ctx, email, password)
	}
	return nil, nil
}
