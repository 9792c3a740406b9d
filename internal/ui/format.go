package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/shutterfolio/backend/internal/model"
)

// NoImagesText is shown in place of an empty gallery or carousel.
const NoImagesText = "No images available"

// stars renders a 1..5 rating as filled and empty stars.
func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > model.MaxRating {
		rating = model.MaxRating
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", model.MaxRating-rating)
}

// messageTitle is the list line for an inbox message.
func messageTitle(m *model.ContactMessage) string {
	return fmt.Sprintf("%s <%s>", m.Name, m.Email)
}

// messageDetail is the body pane for an inbox message. Output is escaped
// for dynamic-color text views.
func messageDetail(m *model.ContactMessage) string {
	if m == nil {
		return "No messages"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[::b]%s[::-]\n", tview.Escape(m.Name))
	fmt.Fprintf(&b, "Email: %s\n", tview.Escape(m.Email))
	if m.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", tview.Escape(m.Phone))
	}
	if m.Date != "" {
		fmt.Fprintf(&b, "Event date: %s\n", tview.Escape(m.Date))
	}
	fmt.Fprintf(&b, "Received: %s\n\n", tview.Escape(m.CreatedAt.Display()))
	b.WriteString(tview.Escape(m.Message))
	return b.String()
}

// itemTitle is the list line for a portfolio item.
func itemTitle(it *model.PortfolioItem) string {
	return fmt.Sprintf("%s [%s]", it.Title, it.Category)
}

// itemDetail is the detail pane for a portfolio item.
func itemDetail(it *model.PortfolioItem) string {
	if it == nil {
		return NoImagesText
	}
	return fmt.Sprintf("[::b]%s[::-]\nCategory: %s\nImage: %s\nAlbum: %s\n\n%s",
		tview.Escape(it.Title),
		tview.Escape(it.Category.String()),
		tview.Escape(it.Image),
		tview.Escape(it.Link),
		tview.Escape(it.Description),
	)
}

// reviewTitle is the list line for a review.
func reviewTitle(r *model.Review) string {
	return fmt.Sprintf("%s %s", stars(r.Rating), r.Name)
}

// carouselLine renders the featured carousel at slide idx.
func carouselLine(items []*model.PortfolioItem, idx int) string {
	if len(items) == 0 {
		return NoImagesText
	}
	if idx < 0 || idx >= len(items) {
		idx = 0
	}
	it := items[idx]
	return fmt.Sprintf("◀ %d/%d  %s (%s)  ▶", idx+1, len(items), it.Title, it.Category)
}

// reviewStrip lays the testimonials out on one line for the scroller.
func reviewStrip(reviews []*model.Review) []rune {
	parts := make([]string, 0, len(reviews))
	for _, r := range reviews {
		parts = append(parts, fmt.Sprintf("%s \"%s\" - %s, %s", stars(r.Rating), r.Text, r.Name, r.Date))
	}
	return []rune(strings.Join(parts, "   |   "))
}

// window returns width runes of strip starting at pos.
func window(strip []rune, pos, width int) string {
	if pos < 0 || pos >= len(strip) {
		pos = 0
	}
	end := pos + width
	if end > len(strip) {
		end = len(strip)
	}
	return string(strip[pos:end])
}
