package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pawantalekar/briefly/internal/core/domain"
)

const commentsCollection = "comments"

type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{coll: db.Collection(commentsCollection)}
}

type commentDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Content    string             `bson:"content"`
	BlogID     string             `bson:"blog_id"`
	UserID     string             `bson:"user_id"`
	AuthorName string             `bson:"author_name,omitempty"`
	ParentID   string             `bson:"parent_id,omitempty"`
	IsEdited   bool               `bson:"is_edited"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d *commentDoc) toDomain() *domain.Comment {
	return &domain.Comment{
		ID:         d.ID.Hex(),
		Content:    d.Content,
		BlogID:     d.BlogID,
		UserID:     d.UserID,
		AuthorName: d.AuthorName,
		ParentID:   d.ParentID,
		IsEdited:   d.IsEdited,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	doc := commentDoc{
		Content:    comment.Content,
		BlogID:     comment.BlogID,
		UserID:     comment.UserID,
		AuthorName: comment.AuthorName,
		ParentID:   comment.ParentID,
		CreatedAt:  comment.CreatedAt,
		UpdatedAt:  comment.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	created := *comment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	var doc commentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CommentRepository) FindByBlogID(ctx context.Context, blogID string) ([]*domain.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"blog_id": blogID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cur.Close(ctx)

	comments := make([]*domain.Comment, 0)
	for cur.Next(ctx) {
		var doc commentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, doc.toDomain())
	}
	return comments, cur.Err()
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string) (*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	var doc commentDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"content":    content,
			"is_edited":  true,
			"updated_at": time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCommentNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return n, nil
}
