package dto

import "time"

// CreatePostDTO 发帖请求
type CreatePostDTO struct {
	Text     string `json:"text" validate:"required,min=1,max=500"`
	MediaURL string `json:"mediaUrl" validate:"omitempty,url"`
}

// CreateCommentDTO 评论请求
type CreateCommentDTO struct {
	Text string `json:"text" validate:"required,min=1,max=300"`
}

// PostAuthorDTO 帖子作者摘要
type PostAuthorDTO struct {
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
}

// CommentDTO 评论视图，author 为作者展示名
type CommentDTO struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostDTO 水合后的帖子视图：作者摘要 + 最新 5 条评论
type PostDTO struct {
	ID            string        `json:"id"`
	Text          string        `json:"text"`
	MediaURL      string        `json:"mediaUrl,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	Author        PostAuthorDTO `json:"author"`
	LikesCount    int64         `json:"likesCount"`
	CommentsCount int64         `json:"commentsCount"`
	Comments      []*CommentDTO `json:"comments"`
}

// FeedDTO 信息流分页结果，NextCursor 仅在整页时下发
type FeedDTO struct {
	Items      []*PostDTO `json:"items"`
	NextCursor *string    `json:"nextCursor"`
}

// LikeResultDTO 点赞响应，返回重算后的计数
type LikeResultDTO struct {
	LikesCount int64 `json:"likesCount"`
}

// CommentResultDTO 评论响应
type CommentResultDTO struct {
	Comment       *CommentDTO `json:"comment"`
	CommentsCount int64       `json:"commentsCount"`
}
