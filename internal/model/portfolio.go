package model

// PortfolioItem is one album shown in the gallery.
type PortfolioItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Image       string   `json:"image"` // absolute URL on an allow-listed host
	Link        string   `json:"link"`  // external album link
	Description string   `json:"description"`
}

// FeaturedLimit is the number of items shown in the home page carousel.
const FeaturedLimit = 6
