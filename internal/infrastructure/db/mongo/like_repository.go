package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawantalekar/briefly/internal/core/domain"
)

const likesCollection = "likes"

type LikeRepository struct {
	coll *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{coll: db.Collection(likesCollection)}
}

type likeDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	BlogID    string             `bson:"blog_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *LikeRepository) Create(ctx context.Context, like *domain.Like) error {
	doc := likeDoc{
		UserID:    like.UserID,
		BlogID:    like.BlogID,
		CreatedAt: like.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		// unique (user_id, blog_id) index: a concurrent double-like is a no-op
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

func (r *LikeRepository) Find(ctx context.Context, userID, blogID string) (*domain.Like, error) {
	var doc likeDoc
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "blog_id": blogID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find like: %w", err)
	}
	return &domain.Like{
		ID:        doc.ID.Hex(),
		UserID:    doc.UserID,
		BlogID:    doc.BlogID,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (r *LikeRepository) Delete(ctx context.Context, userID, blogID string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "blog_id": blogID}); err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}

func (r *LikeRepository) CountByBlogID(ctx context.Context, blogID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"blog_id": blogID})
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return n, nil
}

func (r *LikeRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return n, nil
}
