package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pawantalekar/briefly/internal/core/domain"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

const blogsCollection = "blogs"

type BlogRepository struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection(blogsCollection)}
}

type blogDoc struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Title       string              `bson:"title"`
	Content     string              `bson:"content"`
	Slug        string              `bson:"slug"`
	Excerpt     string              `bson:"excerpt,omitempty"`
	CoverImage  string              `bson:"cover_image,omitempty"`
	AuthorID    string              `bson:"author_id"`
	AuthorName  string              `bson:"author_name,omitempty"`
	CategoryID  string              `bson:"category_id"`
	IsPublished bool                `bson:"is_published"`
	Position    domain.BlogPosition `bson:"position"`
	PublishedAt *time.Time          `bson:"published_at,omitempty"`
	ViewsCount  int64               `bson:"views_count"`
	LikesCount  int64               `bson:"likes_count"`
	CreatedAt   time.Time           `bson:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at"`
}

func (d *blogDoc) toDomain() *domain.Blog {
	return &domain.Blog{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Content:     d.Content,
		Slug:        d.Slug,
		Excerpt:     d.Excerpt,
		CoverImage:  d.CoverImage,
		AuthorID:    d.AuthorID,
		AuthorName:  d.AuthorName,
		CategoryID:  d.CategoryID,
		IsPublished: d.IsPublished,
		Position:    d.Position,
		PublishedAt: d.PublishedAt,
		ViewsCount:  d.ViewsCount,
		LikesCount:  d.LikesCount,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	doc := blogDoc{
		Title:       blog.Title,
		Content:     blog.Content,
		Slug:        blog.Slug,
		Excerpt:     blog.Excerpt,
		CoverImage:  blog.CoverImage,
		AuthorID:    blog.AuthorID,
		AuthorName:  blog.AuthorName,
		CategoryID:  blog.CategoryID,
		IsPublished: blog.IsPublished,
		Position:    blog.Position,
		PublishedAt: blog.PublishedAt,
		CreatedAt:   blog.CreatedAt,
		UpdatedAt:   blog.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}

	created := *blog
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBlogNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *BlogRepository) FindBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *BlogRepository) findOne(ctx context.Context, filter bson.M) (*domain.Blog, error) {
	var doc blogDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BlogRepository) List(ctx context.Context, filter ports.ListBlogsFilter) ([]*domain.Blog, error) {
	query := bson.M{}
	if filter.PublishedOnly {
		query["is_published"] = true
	}
	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	}
	if filter.AuthorID != "" {
		query["author_id"] = filter.AuthorID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	if filter.Offset > 0 {
		opts.SetSkip(int64(filter.Offset))
	}

	return r.findAll(ctx, query, opts)
}

func (r *BlogRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Blog, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"is_published": true,
		"$or": bson.A{
			bson.M{"title": pattern},
			bson.M{"excerpt": pattern},
		},
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "views_count", Value: -1}}).
		SetLimit(int64(limit))

	return r.findAll(ctx, filter, opts)
}

func (r *BlogRepository) findAll(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Blog, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer cur.Close(ctx)

	blogs := make([]*domain.Blog, 0)
	for cur.Next(ctx) {
		var doc blogDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode blog: %w", err)
		}
		blogs = append(blogs, doc.toDomain())
	}
	return blogs, cur.Err()
}

func (r *BlogRepository) Update(ctx context.Context, id string, update ports.BlogUpdate) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBlogNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	setIfNotNil(set, "title", update.Title)
	setIfNotNil(set, "content", update.Content)
	setIfNotNil(set, "slug", update.Slug)
	setIfNotNil(set, "excerpt", update.Excerpt)
	setIfNotNil(set, "cover_image", update.CoverImage)
	setIfNotNil(set, "category_id", update.CategoryID)
	setIfNotNil(set, "is_published", update.IsPublished)
	setIfNotNil(set, "position", update.Position)
	setIfNotNil(set, "published_at", update.PublishedAt)

	var doc blogDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBlogNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

func (r *BlogRepository) IncrementViews(ctx context.Context, id string) error {
	return r.adjustCounter(ctx, id, "views_count", 1)
}

func (r *BlogRepository) AdjustLikes(ctx context.Context, id string, delta int) error {
	return r.adjustCounter(ctx, id, "likes_count", delta)
}

func (r *BlogRepository) adjustCounter(ctx context.Context, id, field string, delta int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBlogNotFound
	}
	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return fmt.Errorf("adjust %s: %w", field, err)
	}
	return nil
}

func (r *BlogRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count blogs: %w", err)
	}
	return n, nil
}

// setIfNotNil adds field to set when the pointer carries a value.
func setIfNotNil[T any](set bson.M, field string, v *T) {
	if v != nil {
		set[field] = *v
	}
}
