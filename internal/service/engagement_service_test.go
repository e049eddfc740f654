package service

import (
	"Wellspring/internal/api/dto"
	"Wellspring/internal/model"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type engagementFixture struct {
	users      *fakeUserRepo
	posts      *fakePostRepo
	engagement *fakeEngagementRepo
	svc        EngagementService
	alice      *model.User
	bob        *model.User
	post       *model.Post
}

func newEngagementFixture(t *testing.T) *engagementFixture {
	t.Helper()

	users := newFakeUserRepo()
	posts := newFakePostRepo()
	engagement := newFakeEngagementRepo()

	f := &engagementFixture{
		users:      users,
		posts:      posts,
		engagement: engagement,
		svc:        NewEngagementService(engagement, posts),
		alice:      users.add("alice", "Alice Example"),
		bob:        users.add("bob", "Bob Example"),
	}

	f.post = &model.Post{AuthorID: f.alice.ID, Text: "Hello"}
	require.NoError(t, posts.Create(context.Background(), f.post))
	return f
}

func TestLikeIsIdempotentPerUser(t *testing.T) {
	f := newEngagementFixture(t)
	ctx := context.Background()

	count, err := f.svc.Like(ctx, f.post.ID, f.bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// 同一用户重复点赞是 no-op，不报错且计数不变
	count, err = f.svc.Like(ctx, f.post.ID, f.bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = f.svc.Like(ctx, f.post.ID, f.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	assert.Equal(t, int64(2), f.post.LikesCount)
}

func TestLikeRecountSelfHeals(t *testing.T) {
	f := newEngagementFixture(t)
	ctx := context.Background()

	// 人为制造脏计数，下一次互动应以真实行数覆盖
	f.post.LikesCount = 99

	count, err := f.svc.Like(ctx, f.post.ID, f.bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, int64(1), f.post.LikesCount)
}

func TestCommentInsertsAndRecounts(t *testing.T) {
	f := newEngagementFixture(t)
	ctx := context.Background()

	comment, count, err := f.svc.Comment(ctx, f.post.ID, f.bob, &dto.CreateCommentDTO{Text: "nice one"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, "nice one", comment.Text)
	assert.Equal(t, "Bob Example", comment.Author)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, int64(1), f.post.CommentsCount)

	// 评论不做幂等，重复提交产生重复行
	_, count, err = f.svc.Comment(ctx, f.post.ID, f.bob, &dto.CreateCommentDTO{Text: "nice one"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, int64(2), f.post.CommentsCount)
}

func TestCommentValidation(t *testing.T) {
	f := newEngagementFixture(t)
	ctx := context.Background()

	for name, text := range map[string]string{
		"empty":    "",
		"too long": strings.Repeat("x", 301),
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := f.svc.Comment(ctx, f.post.ID, f.bob, &dto.CreateCommentDTO{Text: text})

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.NotEmpty(t, vErr.Issues)
			assert.Equal(t, "text", vErr.Issues[0].Field)
		})
	}

	// 校验失败不应写入任何数据
	count, err := f.engagement.CountComments(ctx, f.post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
