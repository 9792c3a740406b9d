package model

import (
	"errors"
	"strings"
)

// Category classifies a portfolio item. The set is closed.
type Category string

const (
	CategoryWeddings    Category = "weddings"
	CategoryEvents      Category = "events"
	CategoryPortraits   Category = "portraits"
	CategoryGraduations Category = "graduations"
	CategoryBirthdays   Category = "birthdays"
	CategoryFashion     Category = "fashion"
)

// CategoryAll is the gallery filter value that matches every category.
// It is not a valid category for an item.
const CategoryAll Category = "all"

var categories = []Category{
	CategoryWeddings,
	CategoryEvents,
	CategoryPortraits,
	CategoryGraduations,
	CategoryBirthdays,
	CategoryFashion,
}

// ErrInvalidCategory is returned when a value is outside the category set.
var ErrInvalidCategory = errors.New("invalid category")

// Categories returns the category set in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory normalises s and checks it against the category set.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, v := range categories {
		if c == v {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }
