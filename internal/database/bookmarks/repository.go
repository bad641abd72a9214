// Package bookmarks provides database operations for user bookmarks.
//
// Reads resolve the referenced word with Preload. The reference is weak, so
// a bookmark whose word was deleted reads back with a nil Word until the
// maintenance sweep removes it.
package bookmarks

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/buzzwords/internal/apperrors"
	"github.com/mrlokans/buzzwords/internal/database"
	"github.com/mrlokans/buzzwords/internal/entities"
	"github.com/mrlokans/buzzwords/internal/validation"
)

const (
	MsgDuplicateBookmark = "This word is already bookmarked by the user"
	MsgBookmarkNotFound  = "Bookmark not found or you don't have permission to remove it"
	MsgInvalidBookmarkID = "Invalid bookmark ID format"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a bookmark and loads its word.
func (r *Repository) Create(ctx context.Context, bookmark *entities.Bookmark) error {
	db := r.db.WithContext(ctx)
	err := db.Omit("Word").Create(bookmark).Error
	if err != nil {
		if database.IsDuplicateKey(err) {
			return apperrors.DuplicateKey(MsgDuplicateBookmark, "wordId", "username")
		}
		return apperrors.Internal(err, "create bookmark")
	}

	if err := db.Preload("Word").First(bookmark, "id = ?", bookmark.ID).Error; err != nil {
		return apperrors.Internal(err, "load bookmark")
	}
	return nil
}

// ListForUser returns one page of a user's bookmarks, newest first.
func (r *Repository) ListForUser(ctx context.Context, username string, limit, offset int) ([]entities.Bookmark, error) {
	bookmarks := []entities.Bookmark{}
	err := r.db.WithContext(ctx).
		Preload("Word").
		Where("username = ?", username).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&bookmarks).Error
	if err != nil {
		return nil, apperrors.Internal(err, "list bookmarks")
	}
	return bookmarks, nil
}

func (r *Repository) CountForUser(ctx context.Context, username string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entities.Bookmark{}).Where("username = ?", username).Count(&total).Error
	if err != nil {
		return 0, apperrors.Internal(err, "count bookmarks")
	}
	return total, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.Bookmark{}).Count(&total).Error; err != nil {
		return 0, apperrors.Internal(err, "count bookmarks")
	}
	return total, nil
}

// DeleteOwned removes the bookmark only when both id and owner match and
// returns what was removed.
func (r *Repository) DeleteOwned(ctx context.Context, id, username string) (*entities.Bookmark, error) {
	canonical, ok := validation.ParseID(id)
	if !ok {
		return nil, apperrors.MalformedIdentifier(MsgInvalidBookmarkID)
	}

	var removed entities.Bookmark
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND username = ?", canonical, username).First(&removed).Error; err != nil {
			return err
		}
		return tx.Delete(&removed).Error
	})
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.NotFound(MsgBookmarkNotFound)
		}
		return nil, apperrors.Internal(err, "delete bookmark")
	}
	return &removed, nil
}

// CountOrphans counts bookmarks whose word no longer exists.
func (r *Repository) CountOrphans(ctx context.Context) (int64, error) {
	var total int64
	err := r.orphans(r.db.WithContext(ctx)).Model(&entities.Bookmark{}).Count(&total).Error
	if err != nil {
		return 0, apperrors.Internal(err, "count orphan bookmarks")
	}
	return total, nil
}

// DeleteOrphans removes bookmarks whose word no longer exists.
func (r *Repository) DeleteOrphans(ctx context.Context) (int64, error) {
	result := r.orphans(r.db.WithContext(ctx)).Delete(&entities.Bookmark{})
	if result.Error != nil {
		return 0, apperrors.Internal(result.Error, "delete orphan bookmarks")
	}
	return result.RowsAffected, nil
}

func (r *Repository) orphans(db *gorm.DB) *gorm.DB {
	return db.Where("word_id NOT IN (?)", r.db.Model(&entities.Word{}).Select("id"))
}
