package account

import (
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// Account is the root identity entity. Email and username are globally
// unique; uniqueness is enforced at the storage layer, not here.
type Account struct {
	id             string
	name           string
	username       string
	email          string
	passwordHash   string
	profilePicture string
	createdAt      time.Time
	updatedAt      time.Time
}

// New creates a new account with validation. The password must already be
// hashed by the credential service.
func New(name, username, email, passwordHash string) (*Account, error) {
	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || username == "" || email == "" || passwordHash == "" {
		return nil, pkgerrors.NewValidationError("please fill all the fields")
	}

	now := time.Now()
	return &Account{
		id:           uuid.New().String(),
		name:         name,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds an account from repository data with preserved timestamps
func Reconstruct(id, name, username, email, passwordHash, profilePicture string, createdAt, updatedAt time.Time) *Account {
	return &Account{
		id:             id,
		name:           name,
		username:       username,
		email:          email,
		passwordHash:   passwordHash,
		profilePicture: profilePicture,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (a *Account) ID() string             { return a.id }
func (a *Account) Name() string           { return a.name }
func (a *Account) Username() string       { return a.username }
func (a *Account) Email() string          { return a.email }
func (a *Account) PasswordHash() string   { return a.passwordHash }
func (a *Account) ProfilePicture() string { return a.profilePicture }
func (a *Account) CreatedAt() time.Time   { return a.createdAt }
func (a *Account) UpdatedAt() time.Time   { return a.updatedAt }

// Update mutates the account's basic fields. Empty values leave the
// current value in place.
func (a *Account) Update(name, username, email string) error {
	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if name != "" {
		a.name = name
	}
	if username != "" {
		a.username = username
	}
	if email != "" {
		a.email = email
	}
	a.updatedAt = time.Now()
	return nil
}

// SetProfilePicture records the media URL for the account's picture
func (a *Account) SetProfilePicture(url string) {
	a.profilePicture = url
	a.updatedAt = time.Now()
}

// Summary is the public projection of an account used when decorating
// posts, comments, and connection lists.
type Summary struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Summary returns the account's public projection
func (a *Account) Summary() Summary {
	return Summary{
		ID:             a.id,
		Name:           a.name,
		Username:       a.username,
		Email:          a.email,
		ProfilePicture: a.profilePicture,
	}
}
