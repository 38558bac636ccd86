package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, ttl time.Duration) *TokenService {
	t.Helper()
	svc, err := NewTokenService(TokenConfig{
		SecretKey:  "test-secret-key",
		Issuer:     "test-issuer",
		ExpiryTime: ttl,
	})
	require.NoError(t, err)
	return svc
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestService(t, time.Hour)

	token, err := svc.GenerateToken("user-123", "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateToken(t *testing.T) {
	t.Run("rejects empty token", func(t *testing.T) {
		svc := newTestService(t, time.Hour)
		_, err := svc.ValidateToken("")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		svc := newTestService(t, time.Hour)
		_, err := svc.ValidateToken("not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		svc := newTestService(t, time.Millisecond)
		token, err := svc.GenerateToken("user-123", "user@example.com")
		require.NoError(t, err)

		time.Sleep(50 * time.Millisecond)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		svc := newTestService(t, time.Hour)
		other, err := NewTokenService(TokenConfig{
			SecretKey: "a-different-secret",
			Issuer:    "test-issuer",
		})
		require.NoError(t, err)

		token, err := other.GenerateToken("user-123", "user@example.com")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestNewTokenService(t *testing.T) {
	t.Run("requires a secret", func(t *testing.T) {
		_, err := NewTokenService(TokenConfig{Issuer: "x"})
		assert.Error(t, err)
	})

	t.Run("defaults the expiry", func(t *testing.T) {
		svc, err := NewTokenService(TokenConfig{SecretKey: "s", Issuer: "x"})
		require.NoError(t, err)
		assert.Greater(t, svc.ExpirySeconds(), 0)
	})
}
