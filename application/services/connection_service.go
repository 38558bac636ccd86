package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/ports"
	"github.com/deepak445566/socialmedia/domain/connection"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// ConnectionService maintains the directed, de-duplicated follow graph and
// answers reachability and count queries.
type ConnectionService struct {
	connRepo    ports.ConnectionRepository
	accountRepo ports.AccountRepository
	logger      *zap.Logger
}

// NewConnectionService creates a new connection service
func NewConnectionService(
	connRepo ports.ConnectionRepository,
	accountRepo ports.AccountRepository,
	logger *zap.Logger,
) *ConnectionService {
	return &ConnectionService{
		connRepo:    connRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Follow inserts a follower→target edge. Self-follow is a validation
// error, a missing target account is not found, and a duplicate edge is a
// conflict raised by the storage layer's conditional write.
func (s *ConnectionService) Follow(ctx context.Context, followerID, targetID string) (*connection.Edge, error) {
	edge, err := connection.New(followerID, targetID)
	if err != nil {
		return nil, err
	}

	exists, err := s.accountRepo.Exists(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, pkgerrors.NewNotFoundError("user to follow")
	}

	// The uniqueness check and insert are a single conditional write; two
	// concurrent Follow calls for the same pair cannot both succeed.
	if err := s.connRepo.Create(ctx, edge); err != nil {
		return nil, err
	}

	s.logger.Info("Follow edge created",
		zap.String("follower", followerID),
		zap.String("following", targetID),
	)

	return edge, nil
}

// Unfollow removes the follower→target edge. A missing edge is not found
// so a double-unfollow is surfaced to the caller rather than silently
// succeeding.
func (s *ConnectionService) Unfollow(ctx context.Context, followerID, targetID string) error {
	if followerID == "" || targetID == "" {
		return pkgerrors.NewValidationError("follower and following user IDs are required")
	}

	if err := s.connRepo.Delete(ctx, followerID, targetID); err != nil {
		return err
	}

	s.logger.Info("Follow edge removed",
		zap.String("follower", followerID),
		zap.String("following", targetID),
	)

	return nil
}

// ListFollowers returns the accounts following the target, most recently
// connected first, each decorated with the edge's creation time.
func (s *ConnectionService) ListFollowers(ctx context.Context, targetID string) ([]connection.Summary, error) {
	if err := s.requireAccount(ctx, targetID); err != nil {
		return nil, err
	}

	edges, err := s.connRepo.ListFollowers(ctx, targetID)
	if err != nil {
		return nil, err
	}

	return s.decorate(ctx, edges, func(e *connection.Edge) string { return e.Follower() })
}

// ListFollowing returns the accounts the subject follows, most recently
// connected first.
func (s *ConnectionService) ListFollowing(ctx context.Context, followerID string) ([]connection.Summary, error) {
	if err := s.requireAccount(ctx, followerID); err != nil {
		return nil, err
	}

	edges, err := s.connRepo.ListFollowing(ctx, followerID)
	if err != nil {
		return nil, err
	}

	return s.decorate(ctx, edges, func(e *connection.Edge) string { return e.Following() })
}

// Counts returns the derived follower/following totals for a user.
func (s *ConnectionService) Counts(ctx context.Context, userID string) (connection.Counts, error) {
	if err := s.requireAccount(ctx, userID); err != nil {
		return connection.Counts{}, err
	}

	followers, err := s.connRepo.CountFollowers(ctx, userID)
	if err != nil {
		return connection.Counts{}, err
	}
	following, err := s.connRepo.CountFollowing(ctx, userID)
	if err != nil {
		return connection.Counts{}, err
	}

	return connection.Counts{Followers: followers, Following: following}, nil
}

// IsFollowing reports whether the subject follows the target. Unlike the
// list and count queries it does not require the target account to exist;
// a non-existent target simply yields false. The asymmetry is intentional
// and preserved from the original behavior.
func (s *ConnectionService) IsFollowing(ctx context.Context, subjectID, targetID string) (bool, error) {
	if subjectID == "" || targetID == "" {
		return false, pkgerrors.NewValidationError("subject and target user IDs are required")
	}
	return s.connRepo.Exists(ctx, subjectID, targetID)
}

func (s *ConnectionService) requireAccount(ctx context.Context, userID string) error {
	if userID == "" {
		return pkgerrors.NewValidationError("user ID is required")
	}
	exists, err := s.accountRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return pkgerrors.NewNotFoundError("user")
	}
	return nil
}

// decorate resolves the opposite-side account for each edge and attaches
// the follow time. Edges whose account no longer resolves are skipped.
func (s *ConnectionService) decorate(ctx context.Context, edges []*connection.Edge, side func(*connection.Edge) string) ([]connection.Summary, error) {
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, side(e))
	}

	summaries, err := s.accountRepo.GetSummaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]connection.Summary, 0, len(edges))
	for _, e := range edges {
		summary, ok := summaries[side(e)]
		if !ok {
			continue
		}
		out = append(out, connection.Summary{
			Summary:    summary,
			FollowedAt: e.CreatedAt(),
		})
	}
	return out, nil
}
