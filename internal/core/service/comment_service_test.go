package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawantalekar/briefly/internal/core/domain"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

type stubCommentRepo struct {
	comments map[string]*domain.Comment
	nextID   int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func cloneComment(c *domain.Comment) *domain.Comment {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	r.nextID++
	copy := cloneComment(comment)
	copy.ID = "comment_" + strconv.Itoa(r.nextID)
	r.comments[copy.ID] = cloneComment(copy)
	return cloneComment(copy), nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	return cloneComment(c), nil
}

func (r *stubCommentRepo) FindByBlogID(_ context.Context, blogID string) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.comments {
		if c.BlogID == blogID {
			out = append(out, cloneComment(c))
		}
	}
	return out, nil
}

func (r *stubCommentRepo) UpdateContent(_ context.Context, id, content string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	c.Content = content
	c.UpdatedAt = time.Now().UTC()
	return cloneComment(c), nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *stubCommentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.comments)), nil
}

func TestCommentService_Create(t *testing.T) {
	repo := newStubCommentRepo()
	svc := NewCommentService(repo, zerolog.Nop())

	comment, err := svc.Create(context.Background(), ports.CreateCommentInput{
		Content: "Nice post!", BlogID: "blog_1",
	}, "user_1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if comment.UserID != "user_1" {
		t.Fatalf("author must be taken from the session, got %s", comment.UserID)
	}
	if comment.BlogID != "blog_1" {
		t.Fatalf("unexpected blog id: %s", comment.BlogID)
	}
}

func TestCommentService_Create_Reply(t *testing.T) {
	repo := newStubCommentRepo()
	svc := NewCommentService(repo, zerolog.Nop())

	parent, _ := svc.Create(context.Background(), ports.CreateCommentInput{Content: "Parent", BlogID: "blog_1"}, "user_1")
	reply, err := svc.Create(context.Background(), ports.CreateCommentInput{
		Content: "Reply", BlogID: "blog_1", ParentID: parent.ID,
	}, "user_2")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if reply.ParentID != parent.ID {
		t.Fatalf("unexpected parent id: %s", reply.ParentID)
	}
}

func TestCommentService_ListByBlog(t *testing.T) {
	repo := newStubCommentRepo()
	svc := NewCommentService(repo, zerolog.Nop())

	_, _ = svc.Create(context.Background(), ports.CreateCommentInput{Content: "a", BlogID: "blog_1"}, "user_1")
	_, _ = svc.Create(context.Background(), ports.CreateCommentInput{Content: "b", BlogID: "blog_1"}, "user_2")
	_, _ = svc.Create(context.Background(), ports.CreateCommentInput{Content: "c", BlogID: "blog_2"}, "user_1")

	comments, err := svc.ListByBlog(context.Background(), "blog_1")
	if err != nil {
		t.Fatalf("ListByBlog returned error: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
}

func TestCommentService_Update_OwnerOnly(t *testing.T) {
	repo := newStubCommentRepo()
	svc := NewCommentService(repo, zerolog.Nop())

	comment, _ := svc.Create(context.Background(), ports.CreateCommentInput{Content: "original", BlogID: "blog_1"}, "user_1")

	if _, err := svc.Update(context.Background(), comment.ID, "hacked", "user_2"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	updated, err := svc.Update(context.Background(), comment.ID, "edited", "user_1")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Content != "edited" {
		t.Fatalf("content not updated: %s", updated.Content)
	}
}

func TestCommentService_Delete_OwnerOnly(t *testing.T) {
	repo := newStubCommentRepo()
	svc := NewCommentService(repo, zerolog.Nop())

	comment, _ := svc.Create(context.Background(), ports.CreateCommentInput{Content: "bye", BlogID: "blog_1"}, "user_1")

	if err := svc.Delete(context.Background(), comment.ID, "user_2"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), comment.ID, "user_1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), comment.ID, "user_1"); err != domain.ErrCommentNotFound {
		t.Fatalf("expected ErrCommentNotFound after delete, got %v", err)
	}
}
