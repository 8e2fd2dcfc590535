package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawantalekar/briefly/internal/core/domain"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

// CommentService implements comment use cases with owner-only mutation.
type CommentService struct {
	repo   ports.CommentRepository
	logger zerolog.Logger
}

func NewCommentService(repo ports.CommentRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{repo: repo, logger: logger}
}

func (s *CommentService) Create(ctx context.Context, input ports.CreateCommentInput, userID string) (*domain.Comment, error) {
	now := time.Now().UTC()
	comment := &domain.Comment{
		Content:   input.Content,
		BlogID:    input.BlogID,
		UserID:    userID,
		ParentID:  input.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		s.logger.Error().Err(err).Str("blog_id", input.BlogID).Msg("failed to create comment")
		return nil, err
	}
	return created, nil
}

func (s *CommentService) ListByBlog(ctx context.Context, blogID string) ([]*domain.Comment, error) {
	return s.repo.FindByBlogID(ctx, blogID)
}

func (s *CommentService) Update(ctx context.Context, id, content, userID string) (*domain.Comment, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return s.repo.UpdateContent(ctx, id, content)
}

func (s *CommentService) Delete(ctx context.Context, id, userID string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
