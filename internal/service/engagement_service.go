package service

import (
	"Wellspring/internal/api/dto"
	"Wellspring/internal/model"
	"Wellspring/internal/pkg/util"
	"Wellspring/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EngagementService interface {
	Like(ctx context.Context, postID, userID primitive.ObjectID) (int64, error)
	Comment(ctx context.Context, postID primitive.ObjectID, author *model.User, req *dto.CreateCommentDTO) (*dto.CommentDTO, int64, error)
}

type engagementServiceImpl struct {
	engagementRepo repository.EngagementRepo
	postRepo       repository.PostRepo
}

func NewEngagementService(engagementRepo repository.EngagementRepo, postRepo repository.PostRepo) EngagementService {
	return &engagementServiceImpl{
		engagementRepo: engagementRepo,
		postRepo:       postRepo,
	}
}

// Like 幂等点赞：唯一键冲突（重复点赞）静默吞掉，其余插入错误照常上抛
// 之后从点赞表重算真实行数回写帖子并返回，保证计数器可从任何历史不一致中自愈
func (s *engagementServiceImpl) Like(ctx context.Context, postID, userID primitive.ObjectID) (int64, error) {
	err := s.engagementRepo.InsertLike(ctx, &model.Like{PostID: postID, UserID: userID})
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return 0, err
	}

	count, err := s.engagementRepo.CountLikes(ctx, postID)
	if err != nil {
		return 0, err
	}
	if err = s.postRepo.SetLikesCount(ctx, postID, count); err != nil {
		return 0, err
	}
	return count, nil
}

// Comment 校验后插入评论（不做幂等，重复提交产生重复行），重算评论计数回写并返回
func (s *engagementServiceImpl) Comment(ctx context.Context, postID primitive.ObjectID, author *model.User, req *dto.CreateCommentDTO) (*dto.CommentDTO, int64, error) {
	if err := NewValidationError(util.ValidateDTO(req)); err != nil {
		return nil, 0, err
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: author.ID,
		Text:     req.Text,
	}
	if err := s.engagementRepo.InsertComment(ctx, comment); err != nil {
		return nil, 0, err
	}

	count, err := s.engagementRepo.CountComments(ctx, postID)
	if err != nil {
		return nil, 0, err
	}
	if err = s.postRepo.SetCommentsCount(ctx, postID, count); err != nil {
		return nil, 0, err
	}

	d := &dto.CommentDTO{
		ID:        comment.ID.Hex(),
		Text:      comment.Text,
		Author:    author.DisplayName,
		CreatedAt: comment.CreatedAt,
	}
	return d, count, nil
}
