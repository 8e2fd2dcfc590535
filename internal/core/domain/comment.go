package domain

import (
	"errors"
	"time"
)

var ErrCommentNotFound = errors.New("comment not found")

// Comment is attached to a blog post. ParentID is set on replies and empty
// on top-level comments. UserID is the ownership anchor for edits/deletes.
type Comment struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	BlogID     string    `json:"blog_id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name,omitempty"`
	ParentID   string    `json:"parent_id,omitempty"`
	IsEdited   bool      `json:"is_edited"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
