package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/domain/account"
	"github.com/deepak445566/socialmedia/domain/profile"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

func newProfileFixture(t *testing.T) (*ProfileService, *mockProfileRepo, *mockAccountRepo, *mockRenderer) {
	t.Helper()
	profileRepo := new(mockProfileRepo)
	accountRepo := new(mockAccountRepo)
	renderer := new(mockRenderer)
	svc := NewProfileService(profileRepo, accountRepo, renderer, zap.NewNop())
	return svc, profileRepo, accountRepo, renderer
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("joins profile with account summary", func(t *testing.T) {
		svc, profileRepo, accountRepo, _ := newProfileFixture(t)
		acc := testAccount(t)
		prof, err := profile.New(acc.ID())
		require.NoError(t, err)
		prof.Update("builder of things", "Engineer", nil, nil)

		accountRepo.On("GetByID", ctx, acc.ID()).Return(acc, nil)
		profileRepo.On("GetByUserID", ctx, acc.ID()).Return(prof, nil)

		view, err := svc.GetByUserID(ctx, acc.ID())
		require.NoError(t, err)
		assert.Equal(t, acc.ID(), view.User.ID)
		assert.Equal(t, "builder of things", view.Bio)
		assert.Equal(t, "Engineer", view.CurrentPosition)
	})

	t.Run("missing account is not found", func(t *testing.T) {
		svc, profileRepo, accountRepo, _ := newProfileFixture(t)
		accountRepo.On("GetByID", ctx, "ghost").Return(nil, pkgerrors.NewNotFoundError("user"))

		_, err := svc.GetByUserID(ctx, "ghost")
		require.Error(t, err)
		assert.True(t, pkgerrors.IsNotFound(err))
		profileRepo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("updates existing profile", func(t *testing.T) {
		svc, profileRepo, accountRepo, _ := newProfileFixture(t)
		acc := testAccount(t)
		prof, err := profile.New(acc.ID())
		require.NoError(t, err)

		accountRepo.On("GetByID", ctx, acc.ID()).Return(acc, nil)
		profileRepo.On("GetByUserID", ctx, acc.ID()).Return(prof, nil)
		profileRepo.On("Save", ctx, prof).Return(nil)

		work := []profile.WorkEntry{{Company: "Acme", Position: "Engineer", Years: "3"}}
		view, err := svc.Update(ctx, acc.ID(), "new bio", "Engineer", work, nil)
		require.NoError(t, err)
		assert.Equal(t, "new bio", view.Bio)
		require.Len(t, view.PastWork, 1)
		assert.Equal(t, "Acme", view.PastWork[0].Company)
	})

	t.Run("recreates a missing profile record", func(t *testing.T) {
		svc, profileRepo, accountRepo, _ := newProfileFixture(t)
		acc := testAccount(t)

		accountRepo.On("GetByID", ctx, acc.ID()).Return(acc, nil)
		profileRepo.On("GetByUserID", ctx, acc.ID()).Return(nil, pkgerrors.NewNotFoundError("profile"))
		profileRepo.On("Save", ctx, mock.AnythingOfType("*profile.Profile")).Return(nil)

		view, err := svc.Update(ctx, acc.ID(), "recovered", "", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "recovered", view.Bio)
		profileRepo.AssertExpectations(t)
	})
}

func TestListProfiles(t *testing.T) {
	ctx := context.Background()

	t.Run("skips profiles whose account no longer resolves", func(t *testing.T) {
		svc, profileRepo, accountRepo, _ := newProfileFixture(t)

		p1, err := profile.New("u1")
		require.NoError(t, err)
		p2, err := profile.New("orphan")
		require.NoError(t, err)

		profileRepo.On("List", ctx).Return([]*profile.Profile{p1, p2}, nil)
		accountRepo.On("GetSummaries", ctx, []string{"u1", "orphan"}).Return(map[string]account.Summary{
			"u1": {ID: "u1", Name: "One"},
		}, nil)

		views, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "u1", views[0].User.ID)
	})
}

func TestExportProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("passes profile data to renderer", func(t *testing.T) {
		svc, profileRepo, accountRepo, renderer := newProfileFixture(t)
		acc := testAccount(t)
		prof, err := profile.New(acc.ID())
		require.NoError(t, err)
		prof.Update("bio text", "Engineer", nil, nil)

		accountRepo.On("GetByID", ctx, acc.ID()).Return(acc, nil)
		profileRepo.On("GetByUserID", ctx, acc.ID()).Return(prof, nil)
		renderer.On("Render", ctx, mock.AnythingOfType("ports.RenderRequest")).
			Return("https://cdn.example.com/profile.pdf", nil)

		url, err := svc.Export(ctx, acc.ID())
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/profile.pdf", url)
	})

	t.Run("renderer failure surfaces as external error", func(t *testing.T) {
		svc, profileRepo, accountRepo, renderer := newProfileFixture(t)
		acc := testAccount(t)
		prof, err := profile.New(acc.ID())
		require.NoError(t, err)

		accountRepo.On("GetByID", ctx, acc.ID()).Return(acc, nil)
		profileRepo.On("GetByUserID", ctx, acc.ID()).Return(prof, nil)
		renderer.On("Render", ctx, mock.Anything).
			Return("", pkgerrors.NewExternalError("render service", assert.AnError))

		_, err = svc.Export(ctx, acc.ID())
		require.Error(t, err)
		assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeExternal))
	})
}
