package post

import (
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// MediaType tags the kind of attached media
type MediaType string

const (
	MediaNone  MediaType = ""
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Post is a user-authored content item with an optional media attachment
// and a like-set. Invariant: Likes() == len(LikedBy()) at all times and
// LikedBy() contains no duplicate identity.
type Post struct {
	id        string
	userID    string
	body      string
	mediaURL  string
	mediaType MediaType
	likes     int
	likedBy   map[string]struct{}
	createdAt time.Time
	updatedAt time.Time
}

// New creates a new post
func New(userID, body, mediaURL string, mediaType MediaType) (*Post, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}
	if strings.TrimSpace(body) == "" {
		return nil, pkgerrors.NewValidationError("body is required")
	}

	now := time.Now()
	return &Post{
		id:        uuid.New().String(),
		userID:    userID,
		body:      body,
		mediaURL:  mediaURL,
		mediaType: mediaType,
		likedBy:   map[string]struct{}{},
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a post from repository data. The liker list is
// de-duplicated and the counter re-floored so a drifted record converges
// back to the invariant.
func Reconstruct(id, userID, body, mediaURL string, mediaType MediaType, likes int, likedBy []string, createdAt, updatedAt time.Time) *Post {
	set := make(map[string]struct{}, len(likedBy))
	for _, u := range likedBy {
		set[u] = struct{}{}
	}
	if likes != len(set) {
		likes = len(set)
	}
	return &Post{
		id:        id,
		userID:    userID,
		body:      body,
		mediaURL:  mediaURL,
		mediaType: mediaType,
		likes:     likes,
		likedBy:   set,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *Post) ID() string           { return p.id }
func (p *Post) UserID() string       { return p.userID }
func (p *Post) Body() string         { return p.body }
func (p *Post) MediaURL() string     { return p.mediaURL }
func (p *Post) MediaType() MediaType { return p.mediaType }
func (p *Post) Likes() int           { return p.likes }
func (p *Post) CreatedAt() time.Time { return p.createdAt }
func (p *Post) UpdatedAt() time.Time { return p.updatedAt }

// OwnerID satisfies the ownership guard
func (p *Post) OwnerID() string { return p.userID }

// LikedBy returns the current liker identities. Order is not defined.
func (p *Post) LikedBy() []string {
	out := make([]string, 0, len(p.likedBy))
	for u := range p.likedBy {
		out = append(out, u)
	}
	return out
}

// IsLikedBy reports whether the user is in the like-set
func (p *Post) IsLikedBy(userID string) bool {
	_, ok := p.likedBy[userID]
	return ok
}

// ToggleLike flips the user's membership in the like-set and adjusts the
// counter, flooring at zero. Returns the new membership state and count.
// ToggleLike is its own inverse.
func (p *Post) ToggleLike(userID string) (liked bool, likes int) {
	if _, ok := p.likedBy[userID]; ok {
		delete(p.likedBy, userID)
		p.likes--
		if p.likes < 0 {
			p.likes = 0
		}
		liked = false
	} else {
		p.likedBy[userID] = struct{}{}
		p.likes++
		liked = true
	}
	p.updatedAt = time.Now()
	return liked, p.likes
}
