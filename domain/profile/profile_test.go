package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates empty profile", func(t *testing.T) {
		p, err := New("user-1")
		require.NoError(t, err)

		assert.Equal(t, "user-1", p.UserID())
		assert.Empty(t, p.Bio())
		assert.Empty(t, p.PastWork())
		assert.Empty(t, p.Education())
	})

	t.Run("rejects empty user ID", func(t *testing.T) {
		_, err := New("")
		assert.Error(t, err)
	})
}

func TestUpdate(t *testing.T) {
	p, err := New("user-1")
	require.NoError(t, err)

	work := []WorkEntry{{Company: "Acme", Position: "Engineer", Years: "2"}}
	edu := []EducationEntry{{School: "State", Degree: "BSc", FieldOfStudy: "CS"}}
	p.Update("bio", "Engineer", work, edu)

	assert.Equal(t, "bio", p.Bio())
	assert.Len(t, p.PastWork(), 1)
	assert.Len(t, p.Education(), 1)

	t.Run("nil slices leave lists unchanged", func(t *testing.T) {
		p.Update("new bio", "Senior Engineer", nil, nil)

		assert.Equal(t, "new bio", p.Bio())
		assert.Len(t, p.PastWork(), 1, "past work kept")
		assert.Len(t, p.Education(), 1, "education kept")
	})

	t.Run("empty slices clear lists", func(t *testing.T) {
		p.Update("new bio", "", []WorkEntry{}, []EducationEntry{})

		assert.Empty(t, p.PastWork())
		assert.Empty(t, p.Education())
	})
}
