package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

func TestNew(t *testing.T) {
	t.Run("creates account", func(t *testing.T) {
		acc, err := New("Jordan Doe", "jordand", "Jordan@Example.com", "hashed-pw")
		require.NoError(t, err)

		assert.NotEmpty(t, acc.ID())
		assert.Equal(t, "Jordan Doe", acc.Name())
		assert.Equal(t, "jordand", acc.Username())
		assert.Equal(t, "jordan@example.com", acc.Email(), "email is normalized to lowercase")
		assert.Equal(t, "hashed-pw", acc.PasswordHash())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		cases := []struct {
			name, username, email string
		}{
			{"", "user", "a@b.com"},
			{"Name", "", "a@b.com"},
			{"Name", "user", ""},
		}
		for _, tc := range cases {
			_, err := New(tc.name, tc.username, tc.email, "hash")
			require.Error(t, err)
			assert.True(t, pkgerrors.IsValidation(err))
		}
	})
}

func TestUpdate(t *testing.T) {
	acc, err := New("Jordan Doe", "jordand", "jordan@example.com", "hash")
	require.NoError(t, err)

	t.Run("empty fields leave values unchanged", func(t *testing.T) {
		require.NoError(t, acc.Update("", "", ""))

		assert.Equal(t, "Jordan Doe", acc.Name())
		assert.Equal(t, "jordand", acc.Username())
		assert.Equal(t, "jordan@example.com", acc.Email())
	})

	t.Run("set fields overwrite", func(t *testing.T) {
		require.NoError(t, acc.Update("New Name", "newname", "New@Example.com"))

		assert.Equal(t, "New Name", acc.Name())
		assert.Equal(t, "newname", acc.Username())
		assert.Equal(t, "new@example.com", acc.Email())
	})
}

func TestSummary(t *testing.T) {
	acc, err := New("Jordan Doe", "jordand", "jordan@example.com", "hash")
	require.NoError(t, err)
	acc.SetProfilePicture("https://cdn.example.com/p.png")

	s := acc.Summary()
	assert.Equal(t, acc.ID(), s.ID)
	assert.Equal(t, "Jordan Doe", s.Name)
	assert.Equal(t, "jordand", s.Username)
	assert.Equal(t, "jordan@example.com", s.Email)
	assert.Equal(t, "https://cdn.example.com/p.png", s.ProfilePicture)
}
