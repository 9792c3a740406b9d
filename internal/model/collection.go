package model

// Collection names a set of independent documents in the store.
type Collection string

const (
	CollectionPortfolio Collection = "portfolio"
	CollectionContacts  Collection = "contacts"
	CollectionReviews   Collection = "reviews"
)

func (c Collection) String() string { return string(c) }
