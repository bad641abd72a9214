package auth

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/buzzwords/internal/apperrors"
	"github.com/mrlokans/buzzwords/internal/config"
	"github.com/mrlokans/buzzwords/internal/database"
	"github.com/mrlokans/buzzwords/internal/database/users"
	"github.com/mrlokans/buzzwords/internal/validation"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	db, err := database.NewDatabase(database.Options{
		Driver: database.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "auth.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewService(users.NewRepository(db.DB), validation.New(), config.Auth{BcryptCost: 4})
}

func validSignup() SignupInput {
	return SignupInput{
		Username:  "  Alice ",
		Email:     "Alice@Example.com ",
		Password:  "correct-horse",
		FirstName: " Alice ",
		LastName:  "Liddell",
	}
}

func TestService_Signup(t *testing.T) {
	svc := setupTestService(t)

	user, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.FirstName)
	assert.NotEqual(t, "correct-horse", user.Password)
	assert.NoError(t, CheckPassword("correct-horse", user.Password))
}

func TestService_Signup_DottedUsername(t *testing.T) {
	svc := setupTestService(t)

	in := validSignup()
	in.Username, in.Email = " John.Doe ", "john@example.com"
	user, err := svc.Signup(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "john.doe", user.Username)

	logged, err := svc.Login(context.Background(), "john.doe", in.Password)
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestService_Signup_Failures(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	_, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	tests := []struct {
		name     string
		mutate   func(in *SignupInput)
		wantKind apperrors.Kind
		wantMsg  string
	}{
		{
			name:     "missing username",
			mutate:   func(in *SignupInput) { in.Username = "   " },
			wantKind: apperrors.KindMissingField,
			wantMsg:  MsgSignupFieldsRequired,
		},
		{
			name:     "missing password",
			mutate:   func(in *SignupInput) { in.Username, in.Email, in.Password = "bob", "bob@example.com", "" },
			wantKind: apperrors.KindMissingField,
		},
		{
			name:     "invalid email",
			mutate:   func(in *SignupInput) { in.Username, in.Email = "bob", "not-an-email" },
			wantKind: apperrors.KindValidation,
		},
		{
			name:     "short password",
			mutate:   func(in *SignupInput) { in.Username, in.Email, in.Password = "bob", "bob@example.com", "short" },
			wantKind: apperrors.KindValidation,
		},
		{
			name:     "password over 72 bytes",
			mutate:   func(in *SignupInput) { in.Username, in.Email, in.Password = "bob", "bob@example.com", strings.Repeat("x", 73) },
			wantKind: apperrors.KindValidation,
		},
		{
			name:     "username taken case-insensitively",
			mutate:   func(in *SignupInput) { in.Username, in.Email = "ALICE", "other@example.com" },
			wantKind: apperrors.KindDuplicateKey,
			wantMsg:  MsgUsernameTaken,
		},
		{
			name:     "email taken",
			mutate:   func(in *SignupInput) { in.Username = "bob" },
			wantKind: apperrors.KindDuplicateKey,
			wantMsg:  MsgEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSignup()
			tt.mutate(&in)

			_, err := svc.Signup(ctx, in)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
			if tt.wantMsg != "" {
				var appErr *apperrors.Error
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, tt.wantMsg, appErr.Message)
			}
		})
	}
}

func TestService_Login(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	created, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, err := svc.Login(ctx, "alice", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("username is normalized", func(t *testing.T) {
		_, err := svc.Login(ctx, " ALICE ", "correct-horse")
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "wrong-password")
		var appErr *apperrors.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.KindUnauthorized, appErr.Kind)
		assert.Equal(t, MsgInvalidPassword, appErr.Message)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "correct-horse")
		var appErr *apperrors.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.KindUnauthorized, appErr.Kind)
		assert.Equal(t, MsgInvalidUsername, appErr.Message)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "")
		assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
	})
}
