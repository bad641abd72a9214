package auth

import (
	"context"
	"errors"

	"github.com/mrlokans/buzzwords/internal/apperrors"
	"github.com/mrlokans/buzzwords/internal/config"
	"github.com/mrlokans/buzzwords/internal/entities"
	"github.com/mrlokans/buzzwords/internal/validation"
)

const (
	MsgSignupFieldsRequired = "Username, email, and password are required"
	MsgUsernameTaken        = "Username already exists"
	MsgEmailTaken           = "Email already exists"
	MsgCredentialsRequired  = "Username and password are required"
	MsgInvalidUsername      = "Invalid username"
	MsgInvalidPassword      = "Invalid password"
)

// UserStore defines the user data access the service needs.
type UserStore interface {
	Create(ctx context.Context, user *entities.User) error
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

// SignupInput is the registration payload.
type SignupInput struct {
	Username  string `json:"username" validate:"required,max=64"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
}

// Service handles registration and credential checks. There are no
// sessions: a successful login only returns the user.
type Service struct {
	users     UserStore
	validator *validation.Validator
	config    config.Auth
}

// NewService creates a new authentication service.
func NewService(users UserStore, validator *validation.Validator, cfg config.Auth) *Service {
	return &Service{
		users:     users,
		validator: validator,
		config:    cfg,
	}
}

// Signup registers a user. Username and email are normalized before the
// uniqueness checks; the unique indexes still catch concurrent signups.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*entities.User, error) {
	user := &entities.User{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	validation.NormalizeUser(user)

	missing := validation.MissingFields(
		validation.Field{Name: "username", Value: user.Username},
		validation.Field{Name: "email", Value: user.Email},
		validation.Field{Name: "password", Value: input.Password},
	)
	if len(missing) > 0 {
		return nil, apperrors.MissingField(MsgSignupFieldsRequired, missing...)
	}

	normalized := SignupInput{
		Username:  user.Username,
		Email:     user.Email,
		Password:  input.Password,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if err := s.validator.Validate(&normalized); err != nil {
		return nil, err
	}

	if err := s.ensureAvailable(ctx, user); err != nil {
		return nil, err
	}

	hash, err := HashPassword(input.Password, s.config.BcryptCost)
	if err != nil {
		if errors.Is(err, ErrPasswordTooShort) || errors.Is(err, ErrPasswordTooLong) {
			return nil, apperrors.Validation("Validation error", []apperrors.FieldError{
				{Field: "password", Message: err.Error()},
			})
		}
		return nil, apperrors.Internal(err, "hash password")
	}
	user.Password = hash

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the password for a username. Unknown users and wrong
// passwords are both Unauthorized but carry different messages.
func (s *Service) Login(ctx context.Context, username, password string) (*entities.User, error) {
	username = validation.NormalizeKey(username)
	if username == "" || password == "" {
		return nil, apperrors.Unauthorized(MsgCredentialsRequired)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized(MsgInvalidUsername)
		}
		return nil, err
	}

	if err := CheckPassword(password, user.Password); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return nil, apperrors.Unauthorized(MsgInvalidPassword)
		}
		return nil, apperrors.Internal(err, "check password")
	}

	return user, nil
}

func (s *Service) ensureAvailable(ctx context.Context, user *entities.User) error {
	if _, err := s.users.GetByUsername(ctx, user.Username); err == nil {
		return apperrors.DuplicateKey(MsgUsernameTaken, "username")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	if _, err := s.users.GetByEmail(ctx, user.Email); err == nil {
		return apperrors.DuplicateKey(MsgEmailTaken, "email")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return nil
}
