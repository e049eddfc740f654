package service

import (
	"Wellspring/internal/api/dto"
	"Wellspring/internal/model"
	"Wellspring/internal/repository"
	"context"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// recentCommentLimit 每帖内嵌的最新评论条数
const recentCommentLimit = 5

// Hydrator 将帖子文档组装为反范式化视图：作者摘要 + 最新评论及其作者展示名
// 读密集的扇出操作，每次调用都重读存储，不经过任何缓存
type Hydrator struct {
	userRepo       repository.UserRepo
	engagementRepo repository.EngagementRepo
}

func NewHydrator(userRepo repository.UserRepo, engagementRepo repository.EngagementRepo) *Hydrator {
	return &Hydrator{
		userRepo:       userRepo,
		engagementRepo: engagementRepo,
	}
}

// HydratePost 组装单个帖子视图
func (h *Hydrator) HydratePost(ctx context.Context, post *model.Post) (*dto.PostDTO, error) {
	author, err := h.userRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}

	comments, err := h.engagementRepo.RecentComments(ctx, post.ID, recentCommentLimit)
	if err != nil {
		return nil, err
	}

	commentDTOs, err := h.hydrateComments(ctx, comments)
	if err != nil {
		return nil, err
	}

	var d dto.PostDTO
	if err = copier.Copy(&d, post); err != nil {
		return nil, err
	}
	d.ID = post.ID.Hex()
	d.Author = dto.PostAuthorDTO{
		DisplayName: author.DisplayName,
		Username:    author.Username,
	}
	d.Comments = commentDTOs
	return &d, nil
}

// hydrateComments 批量补全评论作者展示名，作者查询合并为一次 $in
func (h *Hydrator) hydrateComments(ctx context.Context, comments []*model.Comment) ([]*dto.CommentDTO, error) {
	dtos := make([]*dto.CommentDTO, 0, len(comments))
	if len(comments) == 0 {
		return dtos, nil
	}

	seen := make(map[primitive.ObjectID]struct{}, len(comments))
	ids := make([]primitive.ObjectID, 0, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.AuthorID]; !ok {
			seen[c.AuthorID] = struct{}{}
			ids = append(ids, c.AuthorID)
		}
	}

	authors, err := h.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[primitive.ObjectID]string, len(authors))
	for _, u := range authors {
		names[u.ID] = u.DisplayName
	}

	for _, c := range comments {
		dtos = append(dtos, &dto.CommentDTO{
			ID:        c.ID.Hex(),
			Text:      c.Text,
			Author:    names[c.AuthorID],
			CreatedAt: c.CreatedAt,
		})
	}
	return dtos, nil
}
