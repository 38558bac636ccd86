package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		err    *AppError
		typ    ErrorType
		status int
	}{
		{NewValidationError("bad input"), ErrorTypeValidation, http.StatusBadRequest},
		{NewNotFoundError("post"), ErrorTypeNotFound, http.StatusNotFound},
		{NewConflictError("duplicate"), ErrorTypeConflict, http.StatusConflict},
		{NewUnauthorizedError("no session"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{NewForbiddenError("not yours"), ErrorTypeForbidden, http.StatusForbidden},
		{NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{NewDatabaseError("get post", errors.New("io")), ErrorTypeDatabase, http.StatusInternalServerError},
		{NewExternalError("render service", errors.New("timeout")), ErrorTypeExternal, http.StatusBadGateway},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.typ, tc.err.Type)
		assert.Equal(t, tc.status, tc.err.HTTPStatus)
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NewNotFoundError("user to follow")
	assert.Equal(t, "user to follow not found", err.Message)
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("x")))
	assert.True(t, IsConflict(NewConflictError("x")))
	assert.True(t, IsValidation(NewValidationError("x")))
	assert.True(t, IsForbidden(NewForbiddenError("x")))
	assert.True(t, IsUnauthorized(NewUnauthorizedError("x")))

	assert.False(t, IsNotFound(NewConflictError("x")))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewInternalError("wrapper").WithCause(cause)

	assert.ErrorIs(t, err, cause)
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	inner := NewNotFoundError("post")
	wrapped := Wrap(inner, "while deleting")

	assert.True(t, IsNotFound(wrapped))
}
