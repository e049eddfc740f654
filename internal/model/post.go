package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post 帖子模型
// LikesCount/CommentsCount 是反范式化缓存，每次互动后从源表重算回写，不做增量更新
type Post struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorID      primitive.ObjectID `bson:"author_id" json:"authorId"`
	Text          string             `bson:"text" json:"text"`
	MediaURL      string             `bson:"media_url,omitempty" json:"mediaUrl,omitempty"`
	LikesCount    int64              `bson:"likes_count" json:"likesCount"`
	CommentsCount int64              `bson:"comments_count" json:"commentsCount"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"-"`
}
