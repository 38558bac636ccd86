package profile

import (
	"time"

	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// WorkEntry is an embedded record of past employment. Entries are ordered
// and duplicates are allowed.
type WorkEntry struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Years    string `json:"years"`
}

// EducationEntry is an embedded education record
type EducationEntry struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
}

// Profile is the one-to-one extension of an account. It back-references
// the account by user ID; its lifetime is independent once created.
type Profile struct {
	userID          string
	bio             string
	currentPosition string
	pastWork        []WorkEntry
	education       []EducationEntry
	createdAt       time.Time
	updatedAt       time.Time
}

// New creates an empty profile for a user
func New(userID string) (*Profile, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}
	now := time.Now()
	return &Profile{
		userID:    userID,
		pastWork:  []WorkEntry{},
		education: []EducationEntry{},
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a profile from repository data
func Reconstruct(userID, bio, currentPosition string, pastWork []WorkEntry, education []EducationEntry, createdAt, updatedAt time.Time) *Profile {
	if pastWork == nil {
		pastWork = []WorkEntry{}
	}
	if education == nil {
		education = []EducationEntry{}
	}
	return &Profile{
		userID:          userID,
		bio:             bio,
		currentPosition: currentPosition,
		pastWork:        pastWork,
		education:       education,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (p *Profile) UserID() string          { return p.userID }
func (p *Profile) Bio() string             { return p.bio }
func (p *Profile) CurrentPosition() string { return p.currentPosition }
func (p *Profile) CreatedAt() time.Time    { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time    { return p.updatedAt }

// PastWork returns the ordered work history
func (p *Profile) PastWork() []WorkEntry { return p.pastWork }

// Education returns the ordered education history
func (p *Profile) Education() []EducationEntry { return p.education }

// Update replaces the profile's mutable fields. Nil slices leave the
// current lists in place.
func (p *Profile) Update(bio, currentPosition string, pastWork []WorkEntry, education []EducationEntry) {
	p.bio = bio
	p.currentPosition = currentPosition
	if pastWork != nil {
		p.pastWork = pastWork
	}
	if education != nil {
		p.education = education
	}
	p.updatedAt = time.Now()
}
