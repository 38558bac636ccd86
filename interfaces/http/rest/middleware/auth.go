// Package middleware provides HTTP middleware for the REST interface.
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/deepak445566/socialmedia/pkg/auth"
)

// SessionCookieName is the cookie the login flow sets and the
// authentication middleware reads.
const SessionCookieName = "token"

// Authenticate validates the session token and stores the user identity
// in the request context. The token is read from the session cookie
// first, then from a Bearer Authorization header for non-browser clients.
func Authenticate(tokens *auth.TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				respondUnauthorized(w, "authentication required")
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				switch err {
				case auth.ErrExpiredToken:
					respondUnauthorized(w, "session expired")
				default:
					respondUnauthorized(w, "invalid session token")
				}
				return
			}

			ctx := auth.SetUserInContext(r.Context(), &auth.UserContext{
				UserID: claims.UserID,
				Email:  claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
