package repository

import (
	"Wellspring/internal/model"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepo interface {
	Create(ctx context.Context, post *model.Post) error
	List(ctx context.Context, before *primitive.ObjectID, limit int64) ([]*model.Post, error)
	SetLikesCount(ctx context.Context, postID primitive.ObjectID, count int64) error
	SetCommentsCount(ctx context.Context, postID primitive.ObjectID, count int64) error
	Upsert(ctx context.Context, authorID primitive.ObjectID, text, mediaURL string) (*model.Post, error)
}

type postRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepo(db *mongo.Database) PostRepo {
	return &postRepoImpl{
		col: db.Collection("posts"),
	}
}

// Create 插入新帖并回填生成的 ID
func (s *postRepoImpl) Create(ctx context.Context, post *model.Post) error {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	res, err := s.col.InsertOne(ctx, post)
	if err != nil {
		return err
	}
	post.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// List 按 _id 倒序分页，before 非空时仅返回 _id 更小的帖子
func (s *postRepoImpl) List(ctx context.Context, before *primitive.ObjectID, limit int64) ([]*model.Post, error) {
	filter := bson.M{}
	if before != nil {
		filter["_id"] = bson.M{"$lt": *before}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	posts := make([]*model.Post, 0, limit)
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// SetLikesCount 回写重算后的点赞计数
func (s *postRepoImpl) SetLikesCount(ctx context.Context, postID primitive.ObjectID, count int64) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$set": bson.M{"likes_count": count, "updated_at": time.Now()}},
	)
	return err
}

// SetCommentsCount 回写重算后的评论计数
func (s *postRepoImpl) SetCommentsCount(ctx context.Context, postID primitive.ObjectID, count int64) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$set": bson.M{"comments_count": count, "updated_at": time.Now()}},
	)
	return err
}

// Upsert 按 (author_id, text) 幂等创建（种子数据专用）
func (s *postRepoImpl) Upsert(ctx context.Context, authorID primitive.ObjectID, text, mediaURL string) (*model.Post, error) {
	now := time.Now()
	filter := bson.M{"author_id": authorID, "text": text}
	update := bson.M{
		"$setOnInsert": bson.M{
			"author_id":      authorID,
			"text":           text,
			"likes_count":    int64(0),
			"comments_count": int64(0),
			"created_at":     now,
			"updated_at":     now,
		},
	}
	if mediaURL != "" {
		update["$set"] = bson.M{"media_url": mediaURL}
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var post model.Post
	if err := s.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}
