package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawantalekar/briefly/internal/core/domain"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

// LikeService implements the like toggle and public like stats. The blog's
// denormalised likes_count is kept in step with the likes collection.
type LikeService struct {
	repo   ports.LikeRepository
	blogs  ports.BlogRepository
	logger zerolog.Logger
}

func NewLikeService(repo ports.LikeRepository, blogs ports.BlogRepository, logger zerolog.Logger) *LikeService {
	return &LikeService{repo: repo, blogs: blogs, logger: logger}
}

// Toggle likes the post when no like exists and unlikes it otherwise.
func (s *LikeService) Toggle(ctx context.Context, blogID, userID string) (*ports.ToggleResult, error) {
	existing, err := s.repo.Find(ctx, userID, blogID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.repo.Delete(ctx, userID, blogID); err != nil {
			return nil, err
		}
		if err := s.blogs.AdjustLikes(ctx, blogID, -1); err != nil {
			s.logger.Warn().Err(err).Str("blog_id", blogID).Msg("likes_count adjust failed")
		}
		return &ports.ToggleResult{Liked: false, Message: "Blog unliked successfully"}, nil
	}

	if err := s.repo.Create(ctx, &domain.Like{
		UserID:    userID,
		BlogID:    blogID,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, err
	}
	if err := s.blogs.AdjustLikes(ctx, blogID, 1); err != nil {
		s.logger.Warn().Err(err).Str("blog_id", blogID).Msg("likes_count adjust failed")
	}
	return &ports.ToggleResult{Liked: true, Message: "Blog liked successfully"}, nil
}

// Stats reports the like total and, when userID is non-empty, whether that
// user has liked the post.
func (s *LikeService) Stats(ctx context.Context, blogID, userID string) (*ports.LikeStats, error) {
	total, err := s.repo.CountByBlogID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	stats := &ports.LikeStats{BlogID: blogID, TotalLikes: total}
	if userID != "" {
		existing, err := s.repo.Find(ctx, userID, blogID)
		if err != nil {
			return nil, err
		}
		stats.UserLiked = existing != nil
	}
	return stats, nil
}
