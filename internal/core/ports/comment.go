package ports

import (
	"context"

	"github.com/pawantalekar/briefly/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	// FindByBlogID returns all comments on a post, oldest first.
	FindByBlogID(ctx context.Context, blogID string) ([]*domain.Comment, error)
	UpdateContent(ctx context.Context, id, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CreateCommentInput carries the fields accepted when posting a comment.
type CreateCommentInput struct {
	Content  string
	BlogID   string
	ParentID string
}

// CommentService defines use-case operations for comments. Update and Delete
// enforce ownership: userID must match the stored comment author.
type CommentService interface {
	Create(ctx context.Context, input CreateCommentInput, userID string) (*domain.Comment, error)
	ListByBlog(ctx context.Context, blogID string) ([]*domain.Comment, error)
	Update(ctx context.Context, id, content, userID string) (*domain.Comment, error)
	Delete(ctx context.Context, id, userID string) error
}
