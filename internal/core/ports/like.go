package ports

import (
	"context"

	"github.com/pawantalekar/briefly/internal/core/domain"
)

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) error
	// Find returns nil, nil when no like exists for the pair.
	Find(ctx context.Context, userID, blogID string) (*domain.Like, error)
	Delete(ctx context.Context, userID, blogID string) error
	CountByBlogID(ctx context.Context, blogID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// ToggleResult reports the state after a like toggle.
type ToggleResult struct {
	Liked   bool   `json:"liked"`
	Message string `json:"message"`
}

// LikeStats is the public like summary for a post. UserLiked is only
// meaningful when the request carried a valid session.
type LikeStats struct {
	BlogID     string `json:"blog_id"`
	TotalLikes int64  `json:"total_likes"`
	UserLiked  bool   `json:"user_liked"`
}

// LikeService defines use-case operations for likes.
type LikeService interface {
	Toggle(ctx context.Context, blogID, userID string) (*ToggleResult, error)
	// Stats accepts an empty userID for anonymous callers.
	Stats(ctx context.Context, blogID, userID string) (*LikeStats, error)
}
