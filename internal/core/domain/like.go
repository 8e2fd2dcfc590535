package domain

import "time"

// Like records that a user liked a blog post. At most one like exists per
// (user, blog) pair; toggling removes it.
type Like struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	BlogID    string    `json:"blog_id"`
	CreatedAt time.Time `json:"created_at"`
}
