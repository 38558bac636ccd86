package connection

import (
	"time"

	"github.com/deepak445566/socialmedia/domain/account"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// Status of a follow edge. Pending exists in the data model but no request
// workflow produces it; every edge created here is accepted immediately.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
)

// Edge is a directed follower→following relationship. At most one edge per
// ordered pair may exist at any time; the storage layer enforces this with
// a conditional write on the composite key, so the invariant holds under
// concurrent writers without an application-level lock.
type Edge struct {
	follower  string
	following string
	status    Status
	createdAt time.Time
}

// New creates a follow edge. Self-follow is forbidden.
func New(follower, following string) (*Edge, error) {
	if follower == "" || following == "" {
		return nil, pkgerrors.NewValidationError("follower and following user IDs are required")
	}
	if follower == following {
		return nil, pkgerrors.NewValidationError("you cannot follow yourself")
	}
	return &Edge{
		follower:  follower,
		following: following,
		status:    StatusAccepted,
		createdAt: time.Now(),
	}, nil
}

// Reconstruct rebuilds an edge from repository data
func Reconstruct(follower, following string, status Status, createdAt time.Time) *Edge {
	return &Edge{
		follower:  follower,
		following: following,
		status:    status,
		createdAt: createdAt,
	}
}

func (e *Edge) Follower() string     { return e.follower }
func (e *Edge) Following() string    { return e.following }
func (e *Edge) Status() Status       { return e.status }
func (e *Edge) CreatedAt() time.Time { return e.createdAt }

// Counts holds the derived follower/following totals for a user. Always
// computed from the edge set, never cached.
type Counts struct {
	Followers int `json:"followers"`
	Following int `json:"following"`
}

// Summary decorates the opposite-side account of an edge with the edge's
// creation time, for follower/following listings.
type Summary struct {
	account.Summary
	FollowedAt time.Time `json:"followedAt"`
}
