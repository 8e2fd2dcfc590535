package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pawantalekar/briefly/internal/core/domain"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

type stubAdminRepo struct {
	users map[string]*domain.User
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{users: make(map[string]*domain.User)}
}

func (r *stubAdminRepo) ListUsers(_ context.Context) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubAdminRepo) DeleteUser(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubAdminRepo) UpdateUserRole(_ context.Context, id, role string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	return cloneUser(u), nil
}

func (r *stubAdminRepo) SetUserActive(_ context.Context, id string, active bool) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.IsActive = active
	return cloneUser(u), nil
}

func (r *stubAdminRepo) CountUsers(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func newAdminFixture() (*AdminService, *stubAdminRepo, *stubBlogRepo) {
	users := newStubAdminRepo()
	blogs := newStubBlogRepo()
	svc := NewAdminService(users, blogs, newStubCommentRepo(), newStubLikeRepo(), zerolog.Nop())
	return svc, users, blogs
}

func TestAdminService_Stats(t *testing.T) {
	users := newStubAdminRepo()
	users.users["user_1"] = &domain.User{ID: "user_1"}
	users.users["user_2"] = &domain.User{ID: "user_2"}

	blogs := newStubBlogRepo()
	_, _ = blogs.Create(context.Background(), &domain.Blog{Title: "one"})

	comments := newStubCommentRepo()
	_, _ = comments.Create(context.Background(), &domain.Comment{Content: "hi"})

	likes := newStubLikeRepo()
	_ = likes.Create(context.Background(), &domain.Like{UserID: "user_1", BlogID: "blog_1"})

	svc := NewAdminService(users, blogs, comments, likes, zerolog.Nop())
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	want := ports.AdminStats{TotalUsers: 2, TotalBlogs: 1, TotalComments: 1, TotalLikes: 1}
	if *stats != want {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestAdminService_UpdateUserRole(t *testing.T) {
	svc, users, _ := newAdminFixture()
	users.users["user_1"] = &domain.User{ID: "user_1", Role: domain.RoleUser}

	updated, err := svc.UpdateUserRole(context.Background(), "user_1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateUserRole returned error: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("role not updated: %s", updated.Role)
	}
}

func TestAdminService_UpdateUserRole_InvalidRole(t *testing.T) {
	svc, users, _ := newAdminFixture()
	users.users["user_1"] = &domain.User{ID: "user_1", Role: domain.RoleUser}

	if _, err := svc.UpdateUserRole(context.Background(), "user_1", "SUPERUSER"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if users.users["user_1"].Role != domain.RoleUser {
		t.Fatalf("role must not change on invalid input")
	}
}

func TestAdminService_SetUserActive(t *testing.T) {
	svc, users, _ := newAdminFixture()
	users.users["user_1"] = &domain.User{ID: "user_1", IsActive: true}

	updated, err := svc.SetUserActive(context.Background(), "user_1", false)
	if err != nil {
		t.Fatalf("SetUserActive returned error: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("expected deactivated user")
	}
}

func TestAdminService_DeleteUser(t *testing.T) {
	svc, users, _ := newAdminFixture()
	users.users["user_1"] = &domain.User{ID: "user_1"}

	if err := svc.DeleteUser(context.Background(), "user_1"); err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}
	if err := svc.DeleteUser(context.Background(), "user_1"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminService_ListBlogs_IncludesDrafts(t *testing.T) {
	svc, _, blogs := newAdminFixture()
	_, _ = blogs.Create(context.Background(), &domain.Blog{Title: "published", IsPublished: true})
	_, _ = blogs.Create(context.Background(), &domain.Blog{Title: "draft"})

	list, err := svc.ListBlogs(context.Background())
	if err != nil {
		t.Fatalf("ListBlogs returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("admin listing must include drafts, got %d posts", len(list))
	}
}

func TestAdminService_SetBlogPublished(t *testing.T) {
	svc, _, blogs := newAdminFixture()
	created, _ := blogs.Create(context.Background(), &domain.Blog{Title: "draft"})

	updated, err := svc.SetBlogPublished(context.Background(), created.ID, true)
	if err != nil {
		t.Fatalf("SetBlogPublished returned error: %v", err)
	}
	if !updated.IsPublished {
		t.Fatalf("expected published blog")
	}

	updated, err = svc.SetBlogPublished(context.Background(), created.ID, false)
	if err != nil {
		t.Fatalf("SetBlogPublished returned error: %v", err)
	}
	if updated.IsPublished {
		t.Fatalf("expected unpublished blog")
	}
}

func TestAdminService_DeleteBlog(t *testing.T) {
	svc, _, blogs := newAdminFixture()
	created, _ := blogs.Create(context.Background(), &domain.Blog{Title: "doomed"})

	if err := svc.DeleteBlog(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteBlog returned error: %v", err)
	}
	if _, err := blogs.FindByID(context.Background(), created.ID); err != domain.ErrBlogNotFound {
		t.Fatalf("expected ErrBlogNotFound, got %v", err)
	}
}
