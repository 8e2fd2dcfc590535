package ports

import (
	"context"

	"github.com/pawantalekar/briefly/internal/core/domain"
)

// CreateBlogInput carries all data needed to create a post.
type CreateBlogInput struct {
	Title       string
	Content     string
	Excerpt     string
	CoverImage  string
	CategoryID  string
	IsPublished bool
	Position    domain.BlogPosition
}

// UpdateBlogInput holds the fields a client may change; nil means "leave as is".
type UpdateBlogInput struct {
	Title       *string
	Content     *string
	Excerpt     *string
	CoverImage  *string
	CategoryID  *string
	IsPublished *bool
	Position    *domain.BlogPosition
}

// ListBlogsInput carries parameters for the public listing.
type ListBlogsInput struct {
	CategoryID string
	Limit      int
	Offset     int
}

// ViewEvent identifies one read of a post for view counting. Viewer is the
// user id for authenticated readers and the client IP otherwise.
type ViewEvent struct {
	BlogID string
	Viewer string
}

// ViewRecorder accepts view events for asynchronous counting.
type ViewRecorder interface {
	Record(event ViewEvent)
}

// ViewProcessor applies one view event: dedup check, then counter increment.
type ViewProcessor interface {
	Process(ctx context.Context, event ViewEvent) error
}

// ViewDeduper remembers recent (blog, viewer) pairs so repeated reads inside
// the dedup window count once.
type ViewDeduper interface {
	// Seen reports whether the pair was already recorded in the current
	// window, marking it as seen when it was not.
	Seen(ctx context.Context, blogID, viewer string) (bool, error)
}

// BlogService defines use-case operations for blog posts.
type BlogService interface {
	Create(ctx context.Context, input CreateBlogInput, authorID string) (*domain.Blog, error)
	GetByID(ctx context.Context, id, viewer string) (*domain.Blog, error)
	GetBySlug(ctx context.Context, slug, viewer string) (*domain.Blog, error)
	List(ctx context.Context, input ListBlogsInput) ([]*domain.Blog, error)
	Search(ctx context.Context, query string) ([]*domain.Blog, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*domain.Blog, error)
	Update(ctx context.Context, id string, input UpdateBlogInput, userID string) (*domain.Blog, error)
	Delete(ctx context.Context, id, userID string) error
}
