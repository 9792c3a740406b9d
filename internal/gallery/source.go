package gallery

import (
	"context"
	"log/slog"

	"github.com/shutterfolio/backend/internal/model"
)

// Source is the public read surface of the store.
type Source interface {
	Portfolio(ctx context.Context) ([]*model.PortfolioItem, error)
	Featured(ctx context.Context) ([]*model.PortfolioItem, error)
	Reviews(ctx context.Context) ([]*model.Review, error)
}

// LoadGallery reads every portfolio item. A read failure is logged and
// yields an empty gallery.
func LoadGallery(ctx context.Context, src Source) []*model.PortfolioItem {
	items, err := src.Portfolio(ctx)
	if err != nil {
		slog.Error("load gallery failed", "error", err)
		return []*model.PortfolioItem{}
	}
	return nonNil(items)
}

// LoadFeatured reads at most model.FeaturedLimit items for the carousel.
// A failure yields no items, which the view renders as "no images".
func LoadFeatured(ctx context.Context, src Source) []*model.PortfolioItem {
	items, err := src.Featured(ctx)
	if err != nil {
		slog.Error("load featured failed", "error", err)
		return []*model.PortfolioItem{}
	}
	if len(items) > model.FeaturedLimit {
		items = items[:model.FeaturedLimit]
	}
	return nonNil(items)
}

// LoadReviews reads the testimonial strip.
func LoadReviews(ctx context.Context, src Source) []*model.Review {
	reviews, err := src.Reviews(ctx)
	if err != nil {
		slog.Error("load reviews failed", "error", err)
		return []*model.Review{}
	}
	if reviews == nil {
		return []*model.Review{}
	}
	return reviews
}

func nonNil(items []*model.PortfolioItem) []*model.PortfolioItem {
	if items == nil {
		return []*model.PortfolioItem{}
	}
	return items
}
