package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/domain/account"
	"github.com/deepak445566/socialmedia/pkg/auth"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

func newAccountFixture(t *testing.T) (*AccountService, *mockAccountRepo, *mockProfileRepo, *mockMediaStore) {
	t.Helper()
	accountRepo := new(mockAccountRepo)
	profileRepo := new(mockProfileRepo)
	mediaStore := new(mockMediaStore)

	tokens, err := auth.NewTokenService(auth.TokenConfig{
		SecretKey:  "test-secret",
		Issuer:     "test",
		ExpiryTime: time.Hour,
	})
	require.NoError(t, err)

	svc := NewAccountService(accountRepo, profileRepo, mediaStore, tokens, zap.NewNop())
	return svc, accountRepo, profileRepo, mediaStore
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account with profile and token", func(t *testing.T) {
		svc, accountRepo, profileRepo, _ := newAccountFixture(t)

		accountRepo.On("Create", ctx, mock.AnythingOfType("*account.Account")).Return(nil)
		profileRepo.On("Save", ctx, mock.AnythingOfType("*profile.Profile")).Return(nil)

		result, err := svc.Register(ctx, "Jordan", "jordan", "jordan@example.com", "secret123")
		require.NoError(t, err)

		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "jordan", result.Account.Username)
		accountRepo.AssertExpectations(t)
		profileRepo.AssertExpectations(t)
	})

	t.Run("stores a hash, not the password", func(t *testing.T) {
		svc, accountRepo, profileRepo, _ := newAccountFixture(t)

		var created *account.Account
		accountRepo.On("Create", ctx, mock.AnythingOfType("*account.Account")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*account.Account)
			}).Return(nil)
		profileRepo.On("Save", ctx, mock.AnythingOfType("*profile.Profile")).Return(nil)

		_, err := svc.Register(ctx, "Jordan", "jordan", "jordan@example.com", "secret123")
		require.NoError(t, err)

		require.NotNil(t, created)
		assert.NotEqual(t, "secret123", created.PasswordHash())
		assert.NoError(t, auth.ComparePassword(created.PasswordHash(), "secret123"))
	})

	t.Run("duplicate identity surfaces conflict", func(t *testing.T) {
		svc, accountRepo, _, _ := newAccountFixture(t)

		accountRepo.On("Create", ctx, mock.AnythingOfType("*account.Account")).
			Return(pkgerrors.NewConflictError("user with this email or username already exists"))

		_, err := svc.Register(ctx, "Jordan", "jordan", "jordan@example.com", "secret123")
		require.Error(t, err)
		assert.True(t, pkgerrors.IsConflict(err))
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		svc, accountRepo, _, _ := newAccountFixture(t)

		_, err := svc.Register(ctx, "Jordan", "jordan", "jordan@example.com", "")
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
		accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	registered := func(t *testing.T, password string) *account.Account {
		hash, err := auth.HashPassword(password)
		require.NoError(t, err)
		acc, err := account.New("Jordan", "jordan", "jordan@example.com", hash)
		require.NoError(t, err)
		return acc
	}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		svc, accountRepo, _, _ := newAccountFixture(t)
		acc := registered(t, "secret123")
		accountRepo.On("GetByEmail", ctx, "jordan@example.com").Return(acc, nil)

		result, err := svc.Login(ctx, "jordan@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, acc.ID(), result.Account.ID)
	})

	t.Run("wrong password and unknown email produce the same message", func(t *testing.T) {
		svc, accountRepo, _, _ := newAccountFixture(t)
		acc := registered(t, "secret123")
		accountRepo.On("GetByEmail", ctx, "jordan@example.com").Return(acc, nil)
		accountRepo.On("GetByEmail", ctx, "ghost@example.com").
			Return(nil, pkgerrors.NewNotFoundError("user"))

		_, errBadPassword := svc.Login(ctx, "jordan@example.com", "wrong")
		_, errBadEmail := svc.Login(ctx, "ghost@example.com", "secret123")

		require.Error(t, errBadPassword)
		require.Error(t, errBadEmail)
		assert.Equal(t, errBadPassword.Error(), errBadEmail.Error())
	})
}

func TestUpdateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("passes previous identity for re-claiming", func(t *testing.T) {
		svc, accountRepo, _, _ := newAccountFixture(t)
		acc, err := account.New("Jordan", "jordan", "jordan@example.com", "hash")
		require.NoError(t, err)

		accountRepo.On("GetByID", ctx, acc.ID()).Return(acc, nil)
		accountRepo.On("Update", ctx, acc, "jordan@example.com", "jordan").Return(nil)

		summary, err := svc.UpdateAccount(ctx, acc.ID(), "", "newname", "new@example.com")
		require.NoError(t, err)
		assert.Equal(t, "newname", summary.Username)
		assert.Equal(t, "new@example.com", summary.Email)
		accountRepo.AssertExpectations(t)
	})
}

func TestUploadPicture(t *testing.T) {
	ctx := context.Background()

	t.Run("stores media and records URL", func(t *testing.T) {
		svc, accountRepo, _, mediaStore := newAccountFixture(t)
		acc, err := account.New("Jordan", "jordan", "jordan@example.com", "hash")
		require.NoError(t, err)

		accountRepo.On("GetByID", ctx, acc.ID()).Return(acc, nil)
		mediaStore.On("Put", ctx, mock.MatchedBy(func(name string) bool {
			return len(name) > len("avatars/")
		}), "image/png", []byte{9}).Return("https://cdn.example.com/a.png", nil)
		accountRepo.On("Update", ctx, acc, acc.Email(), acc.Username()).Return(nil)

		url, err := svc.UploadPicture(ctx, acc.ID(), "image/png", []byte{9})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/a.png", url)
		assert.Equal(t, url, acc.ProfilePicture())
	})

	t.Run("empty upload fails validation", func(t *testing.T) {
		svc, accountRepo, _, _ := newAccountFixture(t)

		_, err := svc.UploadPicture(ctx, "user", "image/png", nil)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
		accountRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
