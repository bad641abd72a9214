package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/buzzwords/internal/apperrors"
	"github.com/mrlokans/buzzwords/internal/entities"
)

type signupForm struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidator_ValidWord(t *testing.T) {
	v := New()

	err := v.Validate(&entities.Word{
		Word:         "cat",
		Definition:   "a small animal",
		PartOfSpeech: entities.PartOfSpeechNoun,
		Username:     "alice",
	})

	assert.NoError(t, err)
}

func TestValidator_InvalidPartOfSpeech(t *testing.T) {
	v := New()

	err := v.Validate(&entities.Word{
		Word:         "cat",
		Definition:   "a small animal",
		PartOfSpeech: "thing",
		Username:     "alice",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, []string{"partOfSpeech"}, appErr.Fields)
	require.Len(t, appErr.Violations, 1)
	assert.Equal(t, "thing is not a valid part of speech", appErr.Violations[0].Message)
}

func TestValidator_FieldMessages(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{
		Username: strings.Repeat("u", 65),
		Email:    "nope",
		Password: "short",
	})

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Equal(t, []string{"username", "email", "password"}, appErr.Fields)
	assert.Equal(t, []apperrors.FieldError{
		{Field: "username", Message: "username must not exceed 64 characters"},
		{Field: "email", Message: "email must be a valid email address"},
		{Field: "password", Message: "password must be at least 8 characters"},
	}, appErr.Violations)
}

func TestValidator_UsernameFreeForm(t *testing.T) {
	v := New()

	tests := []struct {
		username string
		valid    bool
	}{
		{"alice", true},
		{"john.doe", true},
		{"jo", true},
		{"émile", true},
		{strings.Repeat("u", 64), true},
		{strings.Repeat("u", 65), false},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			err := v.Validate(&signupForm{Username: tt.username, Email: "a@b.co", Password: "longenough"})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
