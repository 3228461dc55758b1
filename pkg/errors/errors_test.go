package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      *StandardError
		expected int
	}{
		{"validation", NewValidationError("bad"), http.StatusBadRequest},
		{"invalid identifier", NewInvalidIdentifier("buyer", "x"), http.StatusBadRequest},
		{"not found", NewNotFound("buyer", "x"), http.StatusNotFound},
		{"internal", NewInternalError("boom"), http.StatusInternalServerError},
		{"unknown code", NewStandardError("Teapot", "?", ""), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.HTTPStatus())
		})
	}
}

func TestNewMissingFields_ListsEveryField(t *testing.T) {
	err := NewMissingFields("invoice_no", "date", "items")

	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, []string{"invoice_no", "date", "items"}, err.Fields)
	assert.Equal(t, "missing fields: invoice_no, date, items", err.Message)
}

func TestIs_MatchesByCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NewNotFound("invoice", "abc"))

	assert.True(t, stderrors.Is(err, ErrNotFound))
	assert.False(t, stderrors.Is(err, ErrValidation))
}

func TestNewInternalError_HasNoDetails(t *testing.T) {
	err := NewInternalError("internal server error")

	assert.Empty(t, err.Details)
	assert.Nil(t, err.Fields)
}
