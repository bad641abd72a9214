package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_HTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindMissingField, http.StatusBadRequest},
		{KindValidation, http.StatusBadRequest},
		{KindInvalidArgument, http.StatusBadRequest},
		{KindMalformedIdentifier, http.StatusBadRequest},
		{KindDuplicateKey, http.StatusConflict},
		{KindNotFound, http.StatusNotFound},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindInternal, http.StatusInternalServerError},
		{Kind("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.HTTPStatus())
		})
	}
}

func TestError_IsMatchesByKind(t *testing.T) {
	err := DuplicateKey("word already exists", "word", "partOfSpeech", "username")

	assert.True(t, errors.Is(err, ErrDuplicateKey))
	assert.False(t, errors.Is(err, ErrNotFound))

	wrapped := fmt.Errorf("submit word: %w", err)
	assert.True(t, errors.Is(wrapped, ErrDuplicateKey))

	var appErr *Error
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, []string{"word", "partOfSpeech", "username"}, appErr.Fields)
}

func TestError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause, "count words")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "count words: connection reset", err.Error())
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestValidation_CollectsFieldsAndMessages(t *testing.T) {
	err := Validation("Validation error", []FieldError{
		{Field: "partOfSpeech", Message: "thing is not a valid part of speech"},
		{Field: "email", Message: "email must be a valid email address"},
	})

	assert.Equal(t, []string{"partOfSpeech", "email"}, err.Fields)
	assert.Equal(t, []FieldError{
		{Field: "partOfSpeech", Message: "thing is not a valid part of speech"},
		{Field: "email", Message: "email must be a valid email address"},
	}, err.Violations)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
}

func TestKindOf_UnclassifiedIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("Word not found")))
}
