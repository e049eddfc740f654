package service

import (
	"Wellspring/internal/model"
	"bytes"
	"context"
	"encoding/binary"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var testIDCounter uint32

// newTestID 生成单调递增的 ObjectID，保证排序断言可预测
func newTestID() primitive.ObjectID {
	n := atomic.AddUint32(&testIDCounter, 1)
	var id primitive.ObjectID
	binary.BigEndian.PutUint32(id[0:4], n)
	return id
}

func duplicateKeyErr() error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*model.User)}
}

func (s *fakeUserRepo) add(username, displayName string) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := &model.User{
		ID:          newTestID(),
		Username:    username,
		DisplayName: displayName,
		CreatedAt:   time.Now(),
	}
	s.users[user.ID] = user
	return user
}

func (s *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (s *fakeUserRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.User
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *fakeUserRepo) Upsert(_ context.Context, username, displayName string) (*model.User, error) {
	if u, err := s.GetByUsername(context.Background(), username); err == nil {
		u.DisplayName = displayName
		return u, nil
	}
	return s.add(username, displayName), nil
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts []*model.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{}
}

func (s *fakePostRepo) Create(_ context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post.ID = newTestID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	s.posts = append(s.posts, post)
	return nil
}

func (s *fakePostRepo) List(_ context.Context, before *primitive.ObjectID, limit int64) ([]*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]*model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if before != nil && bytes.Compare(p.ID[:], before[:]) >= 0 {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		return bytes.Compare(matched[i].ID[:], matched[j].ID[:]) > 0
	})
	if int64(len(matched)) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *fakePostRepo) get(id primitive.ObjectID) *model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *fakePostRepo) SetLikesCount(_ context.Context, postID primitive.ObjectID, count int64) error {
	if p := s.get(postID); p != nil {
		p.LikesCount = count
	}
	return nil
}

func (s *fakePostRepo) SetCommentsCount(_ context.Context, postID primitive.ObjectID, count int64) error {
	if p := s.get(postID); p != nil {
		p.CommentsCount = count
	}
	return nil
}

func (s *fakePostRepo) Upsert(ctx context.Context, authorID primitive.ObjectID, text, mediaURL string) (*model.Post, error) {
	s.mu.Lock()
	for _, p := range s.posts {
		if p.AuthorID == authorID && p.Text == text {
			s.mu.Unlock()
			return p, nil
		}
	}
	s.mu.Unlock()

	post := &model.Post{AuthorID: authorID, Text: text, MediaURL: mediaURL}
	if err := s.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

type fakeEngagementRepo struct {
	mu       sync.Mutex
	likes    map[string]struct{}
	comments []*model.Comment
	seq      int
}

func newFakeEngagementRepo() *fakeEngagementRepo {
	return &fakeEngagementRepo{likes: make(map[string]struct{})}
}

func likeKey(postID, userID primitive.ObjectID) string {
	return postID.Hex() + "/" + userID.Hex()
}

func (s *fakeEngagementRepo) InsertLike(_ context.Context, like *model.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := likeKey(like.PostID, like.UserID)
	if _, ok := s.likes[key]; ok {
		return duplicateKeyErr()
	}
	s.likes[key] = struct{}{}
	like.ID = newTestID()
	like.CreatedAt = time.Now()
	return nil
}

func (s *fakeEngagementRepo) CountLikes(_ context.Context, postID primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	prefix := postID.Hex() + "/"
	for key := range s.likes {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			count++
		}
	}
	return count, nil
}

func (s *fakeEngagementRepo) UpsertLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	err := s.InsertLike(ctx, &model.Like{PostID: postID, UserID: userID})
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return err
	}
	return nil
}

func (s *fakeEngagementRepo) InsertComment(_ context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	comment.ID = newTestID()
	comment.CreatedAt = time.Unix(1700000000, 0).Add(time.Duration(s.seq) * time.Second)
	s.comments = append(s.comments, comment)
	return nil
}

func (s *fakeEngagementRepo) CountComments(_ context.Context, postID primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, c := range s.comments {
		if c.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (s *fakeEngagementRepo) RecentComments(_ context.Context, postID primitive.ObjectID, limit int64) ([]*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]*model.Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if int64(len(matched)) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *fakeEngagementRepo) UpsertComment(ctx context.Context, postID, authorID primitive.ObjectID, text string) (*model.Comment, error) {
	s.mu.Lock()
	for _, c := range s.comments {
		if c.PostID == postID && c.AuthorID == authorID && c.Text == text {
			s.mu.Unlock()
			return c, nil
		}
	}
	s.mu.Unlock()

	comment := &model.Comment{PostID: postID, AuthorID: authorID, Text: text}
	if err := s.InsertComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

type fakePromptRepo struct {
	mu      sync.Mutex
	prompts map[string]*model.Prompt
}

func newFakePromptRepo() *fakePromptRepo {
	return &fakePromptRepo{prompts: make(map[string]*model.Prompt)}
}

func (s *fakePromptRepo) GetByDate(_ context.Context, date string) (*model.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.prompts[date]; ok {
		return p, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (s *fakePromptRepo) Insert(_ context.Context, prompt *model.Prompt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.prompts[prompt.Date]; ok {
		return duplicateKeyErr()
	}
	s.prompts[prompt.Date] = prompt
	return nil
}
