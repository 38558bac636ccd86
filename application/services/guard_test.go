package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak445566/socialmedia/domain/comment"
	"github.com/deepak445566/socialmedia/domain/post"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

func TestAuthorizeOwner(t *testing.T) {
	p, err := post.New("owner", "body", "", post.MediaNone)
	require.NoError(t, err)

	t.Run("owner passes", func(t *testing.T) {
		assert.NoError(t, AuthorizeOwner(p, "owner"))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		err := AuthorizeOwner(p, "someone-else")
		require.Error(t, err)
		assert.True(t, pkgerrors.IsForbidden(err))
	})

	t.Run("applies to comments too", func(t *testing.T) {
		c, err := comment.New("owner", "p1", "body")
		require.NoError(t, err)

		assert.NoError(t, AuthorizeOwner(c, "owner"))
		assert.Error(t, AuthorizeOwner(c, "intruder"))
	})
}
