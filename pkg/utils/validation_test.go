package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

type sampleRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Role  string `validate:"omitempty,oneof=admin member"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct passes", func(t *testing.T) {
		err := ValidateStruct(sampleRequest{Name: "Jordan", Email: "j@example.com"})
		assert.NoError(t, err)
	})

	t.Run("missing fields produce a validation error", func(t *testing.T) {
		err := ValidateStruct(sampleRequest{})
		assert.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
		assert.Contains(t, err.Error(), "name is required")
		assert.Contains(t, err.Error(), "email is required")
	})

	t.Run("bad email is described", func(t *testing.T) {
		err := ValidateStruct(sampleRequest{Name: "Jordan", Email: "not-an-email"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "email must be a valid email")
	})

	t.Run("oneof lists allowed values", func(t *testing.T) {
		err := ValidateStruct(sampleRequest{Name: "J", Email: "j@example.com", Role: "guest"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "role must be one of")
	})
}
