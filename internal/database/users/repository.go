// Package users provides database operations for user management.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetByUsername(ctx, "alice")
package users

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/buzzwords/internal/apperrors"
	"github.com/mrlokans/buzzwords/internal/database"
	"github.com/mrlokans/buzzwords/internal/entities"
)

const (
	MsgUserExists   = "Username or email already exists"
	MsgUserNotFound = "User not found"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a normalized user whose password is already hashed.
func (r *Repository) Create(ctx context.Context, user *entities.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err == nil {
		return nil
	}
	if database.IsDuplicateKey(err) {
		return apperrors.DuplicateKey(MsgUserExists, "username", "email")
	}
	return apperrors.Internal(err, "create user")
}

// GetByUsername retrieves a user by normalized username.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.first(ctx, "username = ?", username)
}

// GetByEmail retrieves a user by normalized email.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&total).Error; err != nil {
		return 0, apperrors.Internal(err, "count users")
	}
	return total, nil
}

func (r *Repository) first(ctx context.Context, cond string, arg any) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where(cond, arg).First(&user).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.NotFound(MsgUserNotFound)
		}
		return nil, apperrors.Internal(err, "get user")
	}
	return &user, nil
}
