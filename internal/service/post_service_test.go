package service

import (
	"Wellspring/internal/api/dto"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostFixture(t *testing.T) (*fakeUserRepo, *fakePostRepo, PostService) {
	t.Helper()
	users := newFakeUserRepo()
	posts := newFakePostRepo()
	engagement := newFakeEngagementRepo()
	return users, posts, NewPostService(posts, NewHydrator(users, engagement))
}

func TestCreatePostStartsWithZeroCounters(t *testing.T) {
	users, _, svc := newPostFixture(t)
	alice := users.add("alice", "Alice Example")

	post, err := svc.Create(context.Background(), alice.ID, &dto.CreatePostDTO{Text: "Hello"})
	require.NoError(t, err)

	assert.Equal(t, "Hello", post.Text)
	assert.Zero(t, post.LikesCount)
	assert.Zero(t, post.CommentsCount)
	assert.Empty(t, post.Comments)
	assert.Equal(t, "Alice Example", post.Author.DisplayName)
	assert.Equal(t, "alice", post.Author.Username)
}

func TestCreatePostWithMediaURL(t *testing.T) {
	users, _, svc := newPostFixture(t)
	alice := users.add("alice", "Alice Example")

	post, err := svc.Create(context.Background(), alice.ID, &dto.CreatePostDTO{
		Text:     "Morning hike",
		MediaURL: "https://example.com/hike.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/hike.jpg", post.MediaURL)
}

func TestCreatePostValidation(t *testing.T) {
	users, posts, svc := newPostFixture(t)
	alice := users.add("alice", "Alice Example")

	cases := map[string]struct {
		req   dto.CreatePostDTO
		field string
	}{
		"missing text":  {dto.CreatePostDTO{}, "text"},
		"text too long": {dto.CreatePostDTO{Text: strings.Repeat("x", 501)}, "text"},
		"malformed url": {dto.CreatePostDTO{Text: "ok", MediaURL: "not a url"}, "mediaUrl"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), alice.ID, &tc.req)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.NotEmpty(t, vErr.Issues)
			assert.Equal(t, tc.field, vErr.Issues[0].Field)
		})
	}

	// 校验失败不应创建帖子
	assert.Empty(t, posts.posts)
}
