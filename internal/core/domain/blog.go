package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// BlogPosition controls where a post surfaces on the home page.
type BlogPosition string

const (
	PositionFeatured BlogPosition = "featured"
	PositionTop      BlogPosition = "top"
	PositionStandard BlogPosition = "standard"
)

var ErrBlogNotFound = errors.New("blog not found")

// Blog is the core publishing aggregate. AuthorID is set once at creation
// and is the sole input to ownership checks on update and delete.
type Blog struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Slug        string       `json:"slug"`
	Excerpt     string       `json:"excerpt,omitempty"`
	CoverImage  string       `json:"cover_image,omitempty"`
	AuthorID    string       `json:"author_id"`
	AuthorName  string       `json:"author_name,omitempty"`
	CategoryID  string       `json:"category_id"`
	IsPublished bool         `json:"is_published"`
	Position    BlogPosition `json:"position"`
	PublishedAt *time.Time   `json:"published_at,omitempty"`
	ViewsCount  int64        `json:"views_count"`
	LikesCount  int64        `json:"likes_count"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a URL-safe slug: lowercase, non-alphanumeric
// runs collapsed to single hyphens, leading/trailing hyphens trimmed.
func Slugify(title string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}
