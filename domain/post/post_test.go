package post

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

func TestNew(t *testing.T) {
	t.Run("creates post with media", func(t *testing.T) {
		p, err := New("user-1", "hello world", "https://cdn.example.com/a.jpg", MediaImage)
		require.NoError(t, err)

		assert.NotEmpty(t, p.ID())
		assert.Equal(t, "user-1", p.UserID())
		assert.Equal(t, "hello world", p.Body())
		assert.Equal(t, MediaImage, p.MediaType())
		assert.Equal(t, 0, p.Likes())
		assert.Empty(t, p.LikedBy())
	})

	t.Run("rejects empty body", func(t *testing.T) {
		_, err := New("user-1", "", "", MediaNone)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
	})

	t.Run("rejects empty user", func(t *testing.T) {
		_, err := New("", "hello", "", MediaNone)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
	})
}

func TestToggleLike(t *testing.T) {
	t.Run("like then unlike is identity", func(t *testing.T) {
		p, err := New("user-1", "post body", "", MediaNone)
		require.NoError(t, err)

		liked, likes := p.ToggleLike("user-2")
		assert.True(t, liked)
		assert.Equal(t, 1, likes)
		assert.True(t, p.IsLikedBy("user-2"))

		liked, likes = p.ToggleLike("user-2")
		assert.False(t, liked)
		assert.Equal(t, 0, likes)
		assert.False(t, p.IsLikedBy("user-2"))
	})

	t.Run("distinct users accumulate", func(t *testing.T) {
		p, err := New("user-1", "post body", "", MediaNone)
		require.NoError(t, err)

		users := []string{"u1", "u2", "u3", "u4", "u5"}
		for _, u := range users {
			p.ToggleLike(u)
		}

		assert.Equal(t, len(users), p.Likes())
		assert.Len(t, p.LikedBy(), len(users))
	})

	t.Run("same user twice does not accumulate", func(t *testing.T) {
		p, err := New("user-1", "post body", "", MediaNone)
		require.NoError(t, err)

		p.ToggleLike("u1")
		p.ToggleLike("u1")
		p.ToggleLike("u1")

		assert.Equal(t, 1, p.Likes())
	})
}

func TestReconstruct(t *testing.T) {
	now := time.Now()

	t.Run("dedupes likers and aligns counter", func(t *testing.T) {
		p := Reconstruct("p1", "user-1", "body", "", MediaNone, 3, []string{"u1", "u2", "u1"}, now, now)

		assert.Len(t, p.LikedBy(), 2)
		assert.Equal(t, 2, p.Likes())
	})

	t.Run("floors negative counter", func(t *testing.T) {
		p := Reconstruct("p1", "user-1", "body", "", MediaNone, -4, nil, now, now)

		assert.Equal(t, 0, p.Likes())
	})
}

func TestOwnerID(t *testing.T) {
	p, err := New("user-1", "body", "", MediaNone)
	require.NoError(t, err)

	assert.Equal(t, p.UserID(), p.OwnerID())
}
