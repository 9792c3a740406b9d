package gallery

import (
	"context"
	"errors"
	"testing"

	"github.com/shutterfolio/backend/internal/model"
)

type mockSource struct {
	portfolioFunc func(ctx context.Context) ([]*model.PortfolioItem, error)
	featuredFunc  func(ctx context.Context) ([]*model.PortfolioItem, error)
	reviewsFunc   func(ctx context.Context) ([]*model.Review, error)
}

func (m *mockSource) Portfolio(ctx context.Context) ([]*model.PortfolioItem, error) {
	if m.portfolioFunc != nil {
		return m.portfolioFunc(ctx)
	}
	return nil, nil
}

func (m *mockSource) Featured(ctx context.Context) ([]*model.PortfolioItem, error) {
	if m.featuredFunc != nil {
		return m.featuredFunc(ctx)
	}
	return nil, nil
}

func (m *mockSource) Reviews(ctx context.Context) ([]*model.Review, error) {
	if m.reviewsFunc != nil {
		return m.reviewsFunc(ctx)
	}
	return nil, nil
}

func TestLoaders_DegradeToEmptyOnError(t *testing.T) {
	boom := errors.New("store unreachable")
	src := &mockSource{
		portfolioFunc: func(ctx context.Context) ([]*model.PortfolioItem, error) { return nil, boom },
		featuredFunc:  func(ctx context.Context) ([]*model.PortfolioItem, error) { return nil, boom },
		reviewsFunc:   func(ctx context.Context) ([]*model.Review, error) { return nil, boom },
	}
	ctx := context.Background()

	if got := LoadGallery(ctx, src); got == nil || len(got) != 0 {
		t.Errorf("expected empty gallery, got %v", got)
	}
	if got := LoadFeatured(ctx, src); got == nil || len(got) != 0 {
		t.Errorf("expected no featured images, got %v", got)
	}
	if got := LoadReviews(ctx, src); got == nil || len(got) != 0 {
		t.Errorf("expected empty reviews, got %v", got)
	}
}

func TestLoadFeatured_CapsAtSix(t *testing.T) {
	src := &mockSource{
		featuredFunc: func(ctx context.Context) ([]*model.PortfolioItem, error) {
			items := make([]*model.PortfolioItem, 9)
			for i := range items {
				items[i] = &model.PortfolioItem{}
			}
			return items, nil
		},
	}
	if got := LoadFeatured(context.Background(), src); len(got) != model.FeaturedLimit {
		t.Errorf("expected %d items, got %d", model.FeaturedLimit, len(got))
	}
}
