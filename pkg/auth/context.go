package auth

import (
	"context"
	"errors"
)

// UserContext represents the authenticated identity resolved from a session
// token. It is passed explicitly to handlers through the request context,
// never stored in ambient state.
type UserContext struct {
	UserID string
	Email  string
}

type contextKey string

const userContextKey contextKey = "user"

// SetUserInContext adds the authenticated user to the context
func SetUserInContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext extracts the authenticated user from the context
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, errors.New("user not found in context")
	}
	return user, nil
}
