package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.NoError(t, ComparePassword(hash, "secret123"))
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	err = ComparePassword(hash, "wrong-password")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestHashPasswordSalts(t *testing.T) {
	h1, err := HashPassword("same-input")
	require.NoError(t, err)
	h2, err := HashPassword("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
