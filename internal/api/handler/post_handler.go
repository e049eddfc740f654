package handler

import (
	"Wellspring/internal/api/dto"
	"Wellspring/internal/api/middleware"
	"Wellspring/internal/pkg/response"
	"Wellspring/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostHandler struct {
	postSvc       service.PostService
	feedSvc       service.FeedService
	engagementSvc service.EngagementService
}

func NewPostHandler(postSvc service.PostService, feedSvc service.FeedService, engagementSvc service.EngagementService) *PostHandler {
	return &PostHandler{
		postSvc:       postSvc,
		feedSvc:       feedSvc,
		engagementSvc: engagementSvc,
	}
}

// ListFeed 游标分页的公开信息流
func (s *PostHandler) ListFeed(c *gin.Context) {
	feed, err := s.feedSvc.List(c.Request.Context(), c.Query("cursor"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}

// CreatePost 发帖
func (s *PostHandler) CreatePost(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.CreatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// LikePost 幂等点赞，返回重算后的计数
func (s *PostHandler) LikePost(c *gin.Context) {
	user := middleware.CurrentUser(c)
	postID, err := parsePostID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	count, err := s.engagementSvc.Like(c.Request.Context(), postID, user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.LikeResultDTO{LikesCount: count})
}

// CommentPost 发布评论，返回新评论与重算后的计数
func (s *PostHandler) CommentPost(c *gin.Context) {
	user := middleware.CurrentUser(c)
	postID, err := parsePostID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateCommentDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, count, err := s.engagementSvc.Comment(c.Request.Context(), postID, user, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.CommentResultDTO{Comment: comment, CommentsCount: count})
}

// parsePostID 非法的 id 作为底层存储错误上抛（响应层按 500 处理）
func parsePostID(c *gin.Context) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param("post_id"))
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "parse post id")
	}
	return id, nil
}
