package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/deepak445566/socialmedia/domain/account"
	"github.com/deepak445566/socialmedia/domain/comment"
	"github.com/deepak445566/socialmedia/domain/connection"
	"github.com/deepak445566/socialmedia/domain/post"
	"github.com/deepak445566/socialmedia/domain/profile"
	"github.com/deepak445566/socialmedia/application/ports"
)

type mockAccountRepo struct {
	mock.Mock
}

var _ ports.AccountRepository = (*mockAccountRepo)(nil)

func (m *mockAccountRepo) Create(ctx context.Context, acc *account.Account) error {
	return m.Called(ctx, acc).Error(0)
}

func (m *mockAccountRepo) Update(ctx context.Context, acc *account.Account, prevEmail, prevUsername string) error {
	return m.Called(ctx, acc, prevEmail, prevUsername).Error(0)
}

func (m *mockAccountRepo) GetByID(ctx context.Context, id string) (*account.Account, error) {
	args := m.Called(ctx, id)
	if acc, ok := args.Get(0).(*account.Account); ok {
		return acc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountRepo) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	args := m.Called(ctx, email)
	if acc, ok := args.Get(0).(*account.Account); ok {
		return acc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountRepo) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepo) GetSummaries(ctx context.Context, ids []string) (map[string]account.Summary, error) {
	args := m.Called(ctx, ids)
	if summaries, ok := args.Get(0).(map[string]account.Summary); ok {
		return summaries, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockProfileRepo struct {
	mock.Mock
}

var _ ports.ProfileRepository = (*mockProfileRepo)(nil)

func (m *mockProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	args := m.Called(ctx, userID)
	if p, ok := args.Get(0).(*profile.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepo) List(ctx context.Context) ([]*profile.Profile, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]*profile.Profile); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPostRepo struct {
	mock.Mock
}

var _ ports.PostRepository = (*mockPostRepo)(nil)

func (m *mockPostRepo) Save(ctx context.Context, p *post.Post) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id string) (*post.Post, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*post.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) ListAll(ctx context.Context) ([]*post.Post, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]*post.Post); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) ListByUserID(ctx context.Context, userID string) ([]*post.Post, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]*post.Post); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPostRepo) ToggleLike(ctx context.Context, postID, userID string) (bool, int, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Int(1), args.Error(2)
}

type mockCommentRepo struct {
	mock.Mock
}

var _ ports.CommentRepository = (*mockCommentRepo)(nil)

func (m *mockCommentRepo) Save(ctx context.Context, c *comment.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id string) (*comment.Comment, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*comment.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) ListByPostID(ctx context.Context, postID string) ([]*comment.Comment, error) {
	args := m.Called(ctx, postID)
	if list, ok := args.Get(0).([]*comment.Comment); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockConnectionRepo struct {
	mock.Mock
}

var _ ports.ConnectionRepository = (*mockConnectionRepo)(nil)

func (m *mockConnectionRepo) Create(ctx context.Context, e *connection.Edge) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockConnectionRepo) Delete(ctx context.Context, follower, following string) error {
	return m.Called(ctx, follower, following).Error(0)
}

func (m *mockConnectionRepo) Exists(ctx context.Context, follower, following string) (bool, error) {
	args := m.Called(ctx, follower, following)
	return args.Bool(0), args.Error(1)
}

func (m *mockConnectionRepo) ListFollowers(ctx context.Context, userID string) ([]*connection.Edge, error) {
	args := m.Called(ctx, userID)
	if edges, ok := args.Get(0).([]*connection.Edge); ok {
		return edges, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConnectionRepo) ListFollowing(ctx context.Context, userID string) ([]*connection.Edge, error) {
	args := m.Called(ctx, userID)
	if edges, ok := args.Get(0).([]*connection.Edge); ok {
		return edges, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConnectionRepo) CountFollowers(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *mockConnectionRepo) CountFollowing(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type mockMediaStore struct {
	mock.Mock
}

var _ ports.MediaStore = (*mockMediaStore)(nil)

func (m *mockMediaStore) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, name, contentType, data)
	return args.String(0), args.Error(1)
}

type mockRenderer struct {
	mock.Mock
}

var _ ports.ProfileRenderer = (*mockRenderer)(nil)

func (m *mockRenderer) Render(ctx context.Context, req ports.RenderRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
