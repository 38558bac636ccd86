package comment

import (
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// Comment is a per-post remark. No edit history; deletable only by its owner.
type Comment struct {
	id        string
	userID    string
	postID    string
	body      string
	createdAt time.Time
}

// New creates a new comment
func New(userID, postID, body string) (*Comment, error) {
	if userID == "" || postID == "" {
		return nil, pkgerrors.NewValidationError("userID and postID are required")
	}
	if strings.TrimSpace(body) == "" {
		return nil, pkgerrors.NewValidationError("body is required")
	}
	return &Comment{
		id:        uuid.New().String(),
		userID:    userID,
		postID:    postID,
		body:      body,
		createdAt: time.Now(),
	}, nil
}

// Reconstruct rebuilds a comment from repository data
func Reconstruct(id, userID, postID, body string, createdAt time.Time) *Comment {
	return &Comment{
		id:        id,
		userID:    userID,
		postID:    postID,
		body:      body,
		createdAt: createdAt,
	}
}

func (c *Comment) ID() string           { return c.id }
func (c *Comment) UserID() string       { return c.userID }
func (c *Comment) PostID() string       { return c.postID }
func (c *Comment) Body() string         { return c.body }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

// OwnerID satisfies the ownership guard
func (c *Comment) OwnerID() string { return c.userID }
