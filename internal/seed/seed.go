package seed

import (
	"Wellspring/internal/model"
	"Wellspring/internal/repository"
	"Wellspring/internal/service"
	"context"
	log "log/slog"

	"github.com/pkg/errors"
)

// Seeder 幂等的演示数据装载：重复执行不产生重复行
// 用户按 username、帖子按 (author, text)、评论按 (post, author, text)、点赞按 (post, user) upsert，
// 最后对每个帖子重算两类计数并确保当日题目
type Seeder struct {
	userRepo       repository.UserRepo
	postRepo       repository.PostRepo
	engagementRepo repository.EngagementRepo
	promptSvc      service.PromptService
}

func NewSeeder(
	userRepo repository.UserRepo,
	postRepo repository.PostRepo,
	engagementRepo repository.EngagementRepo,
	promptSvc service.PromptService,
) *Seeder {
	return &Seeder{
		userRepo:       userRepo,
		postRepo:       postRepo,
		engagementRepo: engagementRepo,
		promptSvc:      promptSvc,
	}
}

type postFixture struct {
	author string
	text   string
}

type commentFixture struct {
	postText string
	author   string
	text     string
}

type likeFixture struct {
	postText string
	users    []string
}

var userFixtures = map[string]string{
	"alice": "Alice Example",
	"bob":   "Bob Example",
}

var postFixtures = []postFixture{
	{"alice", "Started the day with gratitude journaling and a long walk."},
	{"alice", "Cooked a colorful dinner packed with veggies tonight!"},
	{"alice", "Practiced deep breathing between meetings—game changer."},
	{"alice", "Weekend hike reminder: always bring extra water."},
	{"bob", "Shared a book recommendation with the community today."},
	{"bob", "Tried a new 20-minute yoga flow—highly recommend."},
	{"bob", "Made time for a screen-free hour before bed."},
	{"bob", "Checked in on a friend and it made both our days brighter."},
}

var commentFixtures = []commentFixture{
	{
		postText: "Started the day with gratitude journaling and a long walk.",
		author:   "bob",
		text:     "Love this routine—need to borrow the walk idea!",
	},
	{
		postText: "Shared a book recommendation with the community today.",
		author:   "alice",
		text:     "Adding it to my reading list, thanks Bob.",
	},
	{
		postText: "Made time for a screen-free hour before bed.",
		author:   "alice",
		text:     "Curious what you did instead—sounds peaceful.",
	},
}

var likeFixtures = []likeFixture{
	{"Started the day with gratitude journaling and a long walk.", []string{"alice", "bob"}},
	{"Cooked a colorful dinner packed with veggies tonight!", []string{"bob"}},
	{"Shared a book recommendation with the community today.", []string{"alice"}},
	{"Made time for a screen-free hour before bed.", []string{"alice", "bob"}},
}

func (s *Seeder) Run(ctx context.Context) error {
	users := make(map[string]*model.User, len(userFixtures))
	for username, displayName := range userFixtures {
		user, err := s.userRepo.Upsert(ctx, username, displayName)
		if err != nil {
			return errors.Wrapf(err, "upsert user %s", username)
		}
		users[username] = user
	}

	posts := make(map[string]*model.Post, len(postFixtures))
	for _, f := range postFixtures {
		post, err := s.postRepo.Upsert(ctx, users[f.author].ID, f.text, "")
		if err != nil {
			return errors.Wrapf(err, "upsert post %q", f.text)
		}
		posts[f.text] = post
	}

	for _, f := range commentFixtures {
		post, ok := posts[f.postText]
		if !ok {
			continue
		}
		if _, err := s.engagementRepo.UpsertComment(ctx, post.ID, users[f.author].ID, f.text); err != nil {
			return errors.Wrapf(err, "upsert comment %q", f.text)
		}
	}

	for _, f := range likeFixtures {
		post, ok := posts[f.postText]
		if !ok {
			continue
		}
		for _, username := range f.users {
			if err := s.engagementRepo.UpsertLike(ctx, post.ID, users[username].ID); err != nil {
				return errors.Wrapf(err, "upsert like by %s", username)
			}
		}
	}

	// 所有互动落库后统一重算计数
	for _, post := range posts {
		if err := s.refreshCounts(ctx, post); err != nil {
			return err
		}
	}

	if _, err := s.promptSvc.EnsureToday(ctx); err != nil {
		return errors.Wrap(err, "ensure today prompt")
	}

	log.Info("Seed completed", "users", len(users), "posts", len(posts))
	return nil
}

// refreshCounts 以互动表真实行数回写帖子计数
func (s *Seeder) refreshCounts(ctx context.Context, post *model.Post) error {
	likes, err := s.engagementRepo.CountLikes(ctx, post.ID)
	if err != nil {
		return errors.Wrap(err, "count likes")
	}
	if err = s.postRepo.SetLikesCount(ctx, post.ID, likes); err != nil {
		return errors.Wrap(err, "set likes count")
	}

	comments, err := s.engagementRepo.CountComments(ctx, post.ID)
	if err != nil {
		return errors.Wrap(err, "count comments")
	}
	if err = s.postRepo.SetCommentsCount(ctx, post.ID, comments); err != nil {
		return errors.Wrap(err, "set comments count")
	}
	return nil
}
