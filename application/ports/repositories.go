package ports

import (
	"context"

	"github.com/deepak445566/socialmedia/domain/account"
	"github.com/deepak445566/socialmedia/domain/comment"
	"github.com/deepak445566/socialmedia/domain/connection"
	"github.com/deepak445566/socialmedia/domain/post"
	"github.com/deepak445566/socialmedia/domain/profile"
)

// AccountRepository defines the interface for account persistence.
// Create claims the email and username atomically; a duplicate surfaces
// as a conflict error from the storage layer, not from a read-then-write.
type AccountRepository interface {
	// Create persists a new account, failing with a conflict error if the
	// email or username is already taken
	Create(ctx context.Context, acc *account.Account) error

	// Update persists account mutations. prevEmail and prevUsername are the
	// values before mutation so uniqueness claims can be moved.
	Update(ctx context.Context, acc *account.Account, prevEmail, prevUsername string) error

	// GetByID retrieves an account by its ID
	GetByID(ctx context.Context, id string) (*account.Account, error)

	// GetByEmail retrieves an account by email
	GetByEmail(ctx context.Context, email string) (*account.Account, error)

	// Exists reports whether an account with the given ID exists
	Exists(ctx context.Context, id string) (bool, error)

	// GetSummaries retrieves public projections for a set of account IDs.
	// Missing IDs are omitted from the result.
	GetSummaries(ctx context.Context, ids []string) (map[string]account.Summary, error)
}

// ProfileRepository defines the interface for profile persistence
type ProfileRepository interface {
	// Save persists a profile (create or update)
	Save(ctx context.Context, p *profile.Profile) error

	// GetByUserID retrieves the profile owned by a user
	GetByUserID(ctx context.Context, userID string) (*profile.Profile, error)

	// List retrieves all profiles
	List(ctx context.Context) ([]*profile.Profile, error)
}

// PostRepository defines the interface for post persistence
type PostRepository interface {
	// Save persists a new post
	Save(ctx context.Context, p *post.Post) error

	// GetByID retrieves a post by its ID
	GetByID(ctx context.Context, id string) (*post.Post, error)

	// ListAll retrieves all posts, newest first
	ListAll(ctx context.Context) ([]*post.Post, error)

	// ListByUserID retrieves a user's posts, newest first
	ListByUserID(ctx context.Context, userID string) ([]*post.Post, error)

	// Delete removes a post
	Delete(ctx context.Context, id string) error

	// ToggleLike flips the user's membership in the post's like-set and
	// adjusts the counter in a single storage-level atomic update, so
	// concurrent likes by different users cannot lose updates. Fails with
	// a not found error if the post is absent.
	ToggleLike(ctx context.Context, postID, userID string) (liked bool, likes int, err error)
}

// CommentRepository defines the interface for comment persistence
type CommentRepository interface {
	// Save persists a new comment
	Save(ctx context.Context, c *comment.Comment) error

	// GetByID retrieves a comment by its ID
	GetByID(ctx context.Context, id string) (*comment.Comment, error)

	// ListByPostID retrieves a post's comments, oldest first
	ListByPostID(ctx context.Context, postID string) ([]*comment.Comment, error)

	// Delete removes a comment
	Delete(ctx context.Context, id string) error
}

// ConnectionRepository defines the interface for the follow graph.
// Uniqueness of the (follower, following) pair is enforced here with a
// composite-key conditional write, not in application logic.
type ConnectionRepository interface {
	// Create inserts a follow edge, failing with a conflict error if the
	// edge already exists. The existence check and insert are one
	// conditional write.
	Create(ctx context.Context, e *connection.Edge) error

	// Delete removes a follow edge, failing with a not found error if no
	// such edge exists
	Delete(ctx context.Context, follower, following string) error

	// Exists reports whether the follower→following edge is present
	Exists(ctx context.Context, follower, following string) (bool, error)

	// ListFollowers retrieves edges where the user is being followed,
	// most recently connected first
	ListFollowers(ctx context.Context, userID string) ([]*connection.Edge, error)

	// ListFollowing retrieves edges where the user is the follower,
	// most recently connected first
	ListFollowing(ctx context.Context, userID string) ([]*connection.Edge, error)

	// CountFollowers counts edges where the user is being followed
	CountFollowers(ctx context.Context, userID string) (int, error)

	// CountFollowing counts edges where the user is the follower
	CountFollowing(ctx context.Context, userID string) (int, error)
}
