package service

import (
	"Wellspring/internal/api/dto"
	"Wellspring/internal/repository"
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// feedPageSize 信息流固定页大小
const feedPageSize = 10

type FeedService interface {
	List(ctx context.Context, cursor string) (*dto.FeedDTO, error)
}

type feedServiceImpl struct {
	postRepo repository.PostRepo
	hydrator *Hydrator
}

func NewFeedService(postRepo repository.PostRepo, hydrator *Hydrator) FeedService {
	return &feedServiceImpl{
		postRepo: postRepo,
		hydrator: hydrator,
	}
}

// List 按 _id 倒序取一页并逐帖水合
// 整页才下发 nextCursor（整页意味着可能还有更多），短页/空页表示流已到底
func (s *feedServiceImpl) List(ctx context.Context, cursor string) (*dto.FeedDTO, error) {
	var before *primitive.ObjectID
	if cursor != "" {
		id, err := primitive.ObjectIDFromHex(cursor)
		if err != nil {
			return nil, errors.Wrap(err, "parse feed cursor")
		}
		before = &id
	}

	posts, err := s.postRepo.List(ctx, before, feedPageSize)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PostDTO, len(posts))
	g, gCtx := errgroup.WithContext(ctx)
	for i, post := range posts {
		g.Go(func() error {
			d, err := s.hydrator.HydratePost(gCtx, post)
			if err != nil {
				return err
			}
			items[i] = d
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	feed := &dto.FeedDTO{Items: items}
	if len(posts) == feedPageSize {
		last := posts[len(posts)-1].ID.Hex()
		feed.NextCursor = &last
	}
	return feed, nil
}
