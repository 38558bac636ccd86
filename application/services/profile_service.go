package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/ports"
	"github.com/deepak445566/socialmedia/domain/account"
	"github.com/deepak445566/socialmedia/domain/profile"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// ProfileView joins a profile with its owner's account projection
type ProfileView struct {
	User            account.Summary          `json:"userId"`
	Bio             string                   `json:"bio"`
	CurrentPosition string                   `json:"currentPosition"`
	PastWork        []profile.WorkEntry      `json:"pastWork"`
	Education       []profile.EducationEntry `json:"education"`
}

// ProfileService handles profile reads, updates, and export.
type ProfileService struct {
	profileRepo ports.ProfileRepository
	accountRepo ports.AccountRepository
	renderer    ports.ProfileRenderer
	logger      *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(
	profileRepo ports.ProfileRepository,
	accountRepo ports.AccountRepository,
	renderer ports.ProfileRenderer,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		accountRepo: accountRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

// GetByUserID returns the joined profile view for a user
func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (*ProfileView, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("user ID is required")
	}

	acc, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	prof, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return joinProfile(acc.Summary(), prof), nil
}

// Update upserts the caller's profile. A profile missing its record (an
// account orphaned during registration) is recreated here.
func (s *ProfileService) Update(ctx context.Context, userID, bio, currentPosition string, pastWork []profile.WorkEntry, education []profile.EducationEntry) (*ProfileView, error) {
	acc, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	prof, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !pkgerrors.IsNotFound(err) {
			return nil, err
		}
		prof, err = profile.New(userID)
		if err != nil {
			return nil, err
		}
	}

	prof.Update(bio, currentPosition, pastWork, education)
	if err := s.profileRepo.Save(ctx, prof); err != nil {
		return nil, err
	}

	return joinProfile(acc.Summary(), prof), nil
}

// List returns every profile joined with its owner's account projection.
// Profiles whose account no longer resolves are skipped.
func (s *ProfileService) List(ctx context.Context) ([]*ProfileView, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID())
	}

	summaries, err := s.accountRepo.GetSummaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*ProfileView, 0, len(profiles))
	for _, p := range profiles {
		summary, ok := summaries[p.UserID()]
		if !ok {
			continue
		}
		views = append(views, joinProfile(summary, p))
	}
	return views, nil
}

// Export renders a user's profile through the document renderer and
// returns the URL of the rendered file.
func (s *ProfileService) Export(ctx context.Context, userID string) (string, error) {
	view, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	url, err := s.renderer.Render(ctx, ports.RenderRequest{
		Account:   view.User,
		Bio:       view.Bio,
		Position:  view.CurrentPosition,
		PastWork:  view.PastWork,
		Education: view.Education,
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Profile exported",
		zap.String("userID", userID),
		zap.String("url", url),
	)
	return url, nil
}

func joinProfile(summary account.Summary, prof *profile.Profile) *ProfileView {
	return &ProfileView{
		User:            summary,
		Bio:             prof.Bio(),
		CurrentPosition: prof.CurrentPosition(),
		PastWork:        prof.PastWork(),
		Education:       prof.Education(),
	}
}
