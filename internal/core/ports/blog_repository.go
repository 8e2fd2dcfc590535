package ports

import (
	"context"
	"time"

	"github.com/pawantalekar/briefly/internal/core/domain"
)

// ListBlogsFilter carries query parameters for listing blog posts.
type ListBlogsFilter struct {
	CategoryID    string // optional: filter by category
	PublishedOnly bool   // true for the public listing; false for admin views
	AuthorID      string // optional: scope to a single author (drafts included)
	Limit         int    // max rows; capped at 100 by the service
	Offset        int
}

// BlogRepository defines persistence operations for blog posts.
type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Blog, error)
	// List returns posts newest-first according to filter.
	List(ctx context.Context, filter ListBlogsFilter) ([]*domain.Blog, error)
	// Search matches published posts on title or excerpt, most-viewed first,
	// capped at limit.
	Search(ctx context.Context, query string, limit int) ([]*domain.Blog, error)
	Update(ctx context.Context, id string, update BlogUpdate) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	// AdjustLikes moves likes_count by delta (+1 on like, -1 on unlike).
	AdjustLikes(ctx context.Context, id string, delta int) error
	Count(ctx context.Context) (int64, error)
}

// BlogUpdate holds the mutable fields of a post; nil pointers are left
// untouched by the repository.
type BlogUpdate struct {
	Title       *string
	Content     *string
	Slug        *string
	Excerpt     *string
	CoverImage  *string
	CategoryID  *string
	IsPublished *bool
	Position    *domain.BlogPosition
	PublishedAt *time.Time // set exactly once on first publish
}
