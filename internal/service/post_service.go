package service

import (
	"Wellspring/internal/api/dto"
	"Wellspring/internal/model"
	"Wellspring/internal/pkg/util"
	"Wellspring/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostService interface {
	Create(ctx context.Context, authorID primitive.ObjectID, req *dto.CreatePostDTO) (*dto.PostDTO, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	hydrator *Hydrator
}

func NewPostService(postRepo repository.PostRepo, hydrator *Hydrator) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		hydrator: hydrator,
	}
}

// Create 边界校验通过后插入新帖，计数器从零开始，返回水合后的视图
// 校验失败时不发生任何写入
func (s *postServiceImpl) Create(ctx context.Context, authorID primitive.ObjectID, req *dto.CreatePostDTO) (*dto.PostDTO, error) {
	if err := NewValidationError(util.ValidateDTO(req)); err != nil {
		return nil, err
	}

	post := &model.Post{
		AuthorID: authorID,
		Text:     req.Text,
		MediaURL: req.MediaURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.hydrator.HydratePost(ctx, post)
}
