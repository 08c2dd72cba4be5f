package models

import "time"

const (
	// DefaultLimit is the page size used when a request does not set one.
	DefaultLimit = 5
	// MaxLimit caps the page size.
	MaxLimit = 100
)

// Cursor points at the last item of the previous page. Pages are ordered
// by (updated_at, id) descending.
type Cursor struct {
	ID        string    `json:"id" validate:"required,uuid"`
	UpdatedAt time.Time `json:"updatedAt" validate:"required"`
}

// Page is one slice of a cursor-paginated listing.
type Page[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *Cursor `json:"nextCursor"`
}

// PageRequest is the common input of paginated procedures.
type PageRequest struct {
	Cursor *Cursor `json:"cursor" validate:"omitempty"`
	Limit  int     `json:"limit" validate:"omitempty,min=1,max=100"`
}

// EffectiveLimit returns Limit clamped to [1, MaxLimit], or DefaultLimit.
func (p PageRequest) EffectiveLimit() int {
	switch {
	case p.Limit <= 0:
		return DefaultLimit
	case p.Limit > MaxLimit:
		return MaxLimit
	default:
		return p.Limit
	}
}

// VideoQuery filters a video listing.
type VideoQuery struct {
	PageRequest

	// CategoryID narrows the public feed.
	CategoryID *string `json:"categoryId" validate:"omitempty,uuid"`

	// UserID restricts the listing to one owner (studio). Not read from input.
	UserID string `json:"-"`
}

// NewPage builds a page from items fetched with limit+1 rows: the extra row
// only signals that another page exists.
func NewPage[T any](items []T, limit int, cursorOf func(T) Cursor) Page[T] {
	if items == nil {
		items = []T{}
	}
	if len(items) <= limit {
		return Page[T]{Items: items}
	}

	items = items[:limit]
	next := cursorOf(items[len(items)-1])
	return Page[T]{Items: items, NextCursor: &next}
}
