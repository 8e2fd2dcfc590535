package domain

import (
	"errors"
	"time"
)

var ErrCategoryNotFound = errors.New("category not found")

// Category groups blog posts. Slug is derived from the name and regenerated
// whenever the name changes.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
