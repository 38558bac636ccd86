package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/ports"
	"github.com/deepak445566/socialmedia/domain/account"
	"github.com/deepak445566/socialmedia/domain/profile"
	"github.com/deepak445566/socialmedia/pkg/auth"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// AccountService handles registration, login, and account mutation.
type AccountService struct {
	accountRepo ports.AccountRepository
	profileRepo ports.ProfileRepository
	mediaStore  ports.MediaStore
	tokens      *auth.TokenService
	logger      *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(
	accountRepo ports.AccountRepository,
	profileRepo ports.ProfileRepository,
	mediaStore ports.MediaStore,
	tokens *auth.TokenService,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		mediaStore:  mediaStore,
		tokens:      tokens,
		logger:      logger,
	}
}

// AuthResult is the outcome of a successful register or login
type AuthResult struct {
	Account account.Summary
	Token   string
}

// Register creates an account plus an empty profile and issues a session
// token. Email and username uniqueness is enforced by the storage layer's
// conditional writes. Account and profile creation are two separate
// writes; a failure between them leaves an account without a profile.
func (s *AccountService) Register(ctx context.Context, name, username, email, password string) (*AuthResult, error) {
	if password == "" {
		return nil, pkgerrors.NewValidationError("please fill all the fields")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to hash password").WithCause(err)
	}

	acc, err := account.New(name, username, email, hash)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(ctx, acc); err != nil {
		return nil, err
	}

	prof, err := profile.New(acc.ID())
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.Save(ctx, prof); err != nil {
		// Orphaned account without a profile; surfaced in logs, not
		// rolled back.
		s.logger.Error("Failed to create profile for new account",
			zap.String("userID", acc.ID()),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := s.tokens.GenerateToken(acc.ID(), acc.Email())
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to issue session token").WithCause(err)
	}

	s.logger.Info("Account registered",
		zap.String("userID", acc.ID()),
		zap.String("username", acc.Username()),
	)

	return &AuthResult{Account: acc.Summary(), Token: token}, nil
}

// Login verifies credentials and issues a session token. Bad email and bad
// password produce the same message.
func (s *AccountService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, pkgerrors.NewValidationError("please fill all the fields")
	}

	acc, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, pkgerrors.NewValidationError("invalid credentials")
		}
		return nil, err
	}

	if err := auth.ComparePassword(acc.PasswordHash(), password); err != nil {
		return nil, pkgerrors.NewValidationError("invalid credentials")
	}

	token, err := s.tokens.GenerateToken(acc.ID(), acc.Email())
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to issue session token").WithCause(err)
	}

	return &AuthResult{Account: acc.Summary(), Token: token}, nil
}

// GetAccount returns the account projection for an authenticated user
func (s *AccountService) GetAccount(ctx context.Context, userID string) (account.Summary, error) {
	acc, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return account.Summary{}, err
	}
	return acc.Summary(), nil
}

// UpdateAccount mutates the account's basic fields, re-claiming the email
// and username where they changed.
func (s *AccountService) UpdateAccount(ctx context.Context, userID, name, username, email string) (account.Summary, error) {
	acc, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return account.Summary{}, err
	}

	prevEmail, prevUsername := acc.Email(), acc.Username()
	if err := acc.Update(name, username, email); err != nil {
		return account.Summary{}, err
	}

	if err := s.accountRepo.Update(ctx, acc, prevEmail, prevUsername); err != nil {
		return account.Summary{}, err
	}

	return acc.Summary(), nil
}

// UploadPicture stores a profile picture in the media store and records
// the resulting URL on the account.
func (s *AccountService) UploadPicture(ctx context.Context, userID, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", pkgerrors.NewValidationError("no file uploaded")
	}

	acc, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("avatars/%s", uuid.New().String())
	url, err := s.mediaStore.Put(ctx, name, contentType, data)
	if err != nil {
		return "", err
	}

	acc.SetProfilePicture(url)
	if err := s.accountRepo.Update(ctx, acc, acc.Email(), acc.Username()); err != nil {
		return "", err
	}

	return url, nil
}
