// Package gallery holds the public read side: category/title filtering,
// the degraded-to-empty loaders, and the timer-driven featured carousel and
// testimonial scroller.
package gallery

import (
	"strings"

	"github.com/shutterfolio/backend/internal/model"
)

// Categories returns the filter tabs: "all" followed by every category.
func Categories() []model.Category {
	return append([]model.Category{model.CategoryAll}, model.Categories()...)
}

// Filter returns the items whose category matches (case-insensitively, or
// any item when category is "all" or empty) and whose title contains query
// case-insensitively. Relative order is preserved and items is not modified.
func Filter(items []*model.PortfolioItem, category model.Category, query string) []*model.PortfolioItem {
	cat := strings.ToLower(strings.TrimSpace(category.String()))
	q := strings.ToLower(query)

	out := make([]*model.PortfolioItem, 0, len(items))
	for _, it := range items {
		if cat != "" && cat != model.CategoryAll.String() && strings.ToLower(it.Category.String()) != cat {
			continue
		}
		if !strings.Contains(strings.ToLower(it.Title), q) {
			continue
		}
		out = append(out, it)
	}
	return out
}
