package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like 点赞记录，(post_id, user_id) 唯一索引保证每人每帖最多一条
type Like struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    primitive.ObjectID `bson:"post_id" json:"postId"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
