package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("blog").StatusCode())
	assert.Equal(t, http.StatusBadRequest, ValidationMsg("email", "is required").StatusCode())
	assert.Equal(t, http.StatusBadRequest, Conflict("slug taken").StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Internal(fmt.Errorf("boom")).StatusCode())
}

func TestValidationMessage(t *testing.T) {
	single := ValidationMsg("email", "must be a valid email address")
	assert.Equal(t, "must be a valid email address", single.Message)

	multi := Validation(
		FieldError{Field: "name", Message: "is required"},
		FieldError{Field: "email", Message: "is required"},
	)
	assert.Equal(t, "validation failed", multi.Message)
	assert.Len(t, multi.Fields, 2)
}

func TestPredicatesUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("loading appointment: %w", NotFound("appointment"))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.False(t, IsNotFound(fmt.Errorf("plain")))
}
