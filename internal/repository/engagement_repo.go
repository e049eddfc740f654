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

type EngagementRepo interface {
	InsertLike(ctx context.Context, like *model.Like) error
	CountLikes(ctx context.Context, postID primitive.ObjectID) (int64, error)
	UpsertLike(ctx context.Context, postID, userID primitive.ObjectID) error

	InsertComment(ctx context.Context, comment *model.Comment) error
	CountComments(ctx context.Context, postID primitive.ObjectID) (int64, error)
	RecentComments(ctx context.Context, postID primitive.ObjectID, limit int64) ([]*model.Comment, error)
	UpsertComment(ctx context.Context, postID, authorID primitive.ObjectID, text string) (*model.Comment, error)
}

type engagementRepoImpl struct {
	likes    *mongo.Collection
	comments *mongo.Collection
}

func NewEngagementRepo(db *mongo.Database) EngagementRepo {
	return &engagementRepoImpl{
		likes:    db.Collection("likes"),
		comments: db.Collection("comments"),
	}
}

// InsertLike 插入点赞记录，(post_id, user_id) 重复时返回唯一键冲突错误
func (s *engagementRepoImpl) InsertLike(ctx context.Context, like *model.Like) error {
	like.CreatedAt = time.Now()
	res, err := s.likes.InsertOne(ctx, like)
	if err != nil {
		return err
	}
	like.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// CountLikes 统计帖子的真实点赞行数（计数器的事实来源）
func (s *engagementRepoImpl) CountLikes(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	return s.likes.CountDocuments(ctx, bson.M{"post_id": postID})
}

// UpsertLike 幂等点赞（种子数据专用）
func (s *engagementRepoImpl) UpsertLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	filter := bson.M{"post_id": postID, "user_id": userID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"post_id":    postID,
			"user_id":    userID,
			"created_at": time.Now(),
		},
	}
	_, err := s.likes.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// InsertComment 插入评论，不做幂等，重复提交产生重复行
func (s *engagementRepoImpl) InsertComment(ctx context.Context, comment *model.Comment) error {
	comment.CreatedAt = time.Now()
	res, err := s.comments.InsertOne(ctx, comment)
	if err != nil {
		return err
	}
	comment.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// CountComments 统计帖子的真实评论行数
func (s *engagementRepoImpl) CountComments(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	return s.comments.CountDocuments(ctx, bson.M{"post_id": postID})
}

// RecentComments 按创建时间倒序取最新 limit 条评论
func (s *engagementRepoImpl) RecentComments(ctx context.Context, postID primitive.ObjectID, limit int64) ([]*model.Comment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.comments.Find(ctx, bson.M{"post_id": postID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var comments []*model.Comment
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// UpsertComment 按 (post_id, author_id, text) 幂等创建（种子数据专用）
func (s *engagementRepoImpl) UpsertComment(ctx context.Context, postID, authorID primitive.ObjectID, text string) (*model.Comment, error) {
	filter := bson.M{"post_id": postID, "author_id": authorID, "text": text}
	update := bson.M{
		"$setOnInsert": bson.M{
			"post_id":    postID,
			"author_id":  authorID,
			"text":       text,
			"created_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var comment model.Comment
	if err := s.comments.FindOneAndUpdate(ctx, filter, update, opts).Decode(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
