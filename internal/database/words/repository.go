// Package words provides database operations for dictionary entries.
//
// # Usage
//
//	repo := words.NewRepository(db)
//	list, err := repo.List(ctx, words.Filter{Suffix: "ing"})
package words

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/buzzwords/internal/apperrors"
	"github.com/mrlokans/buzzwords/internal/database"
	"github.com/mrlokans/buzzwords/internal/entities"
	"github.com/mrlokans/buzzwords/internal/validation"
)

const (
	MsgDuplicateWord = "This word with the same part of speech already exists"
	MsgWordNotFound  = "Word not found"
	MsgInvalidWordID = "Invalid word ID format"
)

// Filter narrows List. Empty fields are ignored; all set fields must match.
// Prefix and Suffix apply to the word text, Contains to word text or
// definition. Matching is case-insensitive and literal.
type Filter struct {
	Prefix   string
	Suffix   string
	Contains string
	Username string
}

// Repository handles all word database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new words repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an already normalized and validated word.
func (r *Repository) Create(ctx context.Context, word *entities.Word) error {
	err := r.db.WithContext(ctx).Create(word).Error
	if err == nil {
		return nil
	}
	if database.IsDuplicateKey(err) {
		return apperrors.DuplicateKey(MsgDuplicateWord, "word", "partOfSpeech", "username")
	}
	return apperrors.Internal(err, "create word")
}

// GetByID returns the word with the given id.
func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Word, error) {
	canonical, ok := validation.ParseID(id)
	if !ok {
		return nil, apperrors.MalformedIdentifier(MsgInvalidWordID)
	}

	var word entities.Word
	err := r.db.WithContext(ctx).First(&word, "id = ?", canonical).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.NotFound(MsgWordNotFound)
		}
		return nil, apperrors.Internal(err, "get word")
	}
	return &word, nil
}

// List returns matching words ordered by word text, then part of speech,
// then owner.
func (r *Repository) List(ctx context.Context, filter Filter) ([]entities.Word, error) {
	query := r.db.WithContext(ctx).Model(&entities.Word{})

	if filter.Prefix != "" {
		query = query.Where(`LOWER(word) LIKE ? ESCAPE '\'`, likePattern("", filter.Prefix, "%"))
	}
	if filter.Suffix != "" {
		query = query.Where(`LOWER(word) LIKE ? ESCAPE '\'`, likePattern("%", filter.Suffix, ""))
	}
	if filter.Contains != "" {
		pattern := likePattern("%", filter.Contains, "%")
		query = query.Where(`(LOWER(word) LIKE ? ESCAPE '\' OR definition_key LIKE ? ESCAPE '\')`, pattern, pattern)
	}
	if filter.Username != "" {
		query = query.Where("username = ?", filter.Username)
	}

	words := []entities.Word{}
	err := query.Order("word ASC").Order("part_of_speech ASC").Order("username ASC").Find(&words).Error
	if err != nil {
		return nil, apperrors.Internal(err, "list words")
	}
	return words, nil
}

// Random returns one uniformly chosen word, or nil when there are none.
func (r *Repository) Random(ctx context.Context) (*entities.Word, error) {
	var word entities.Word
	err := r.db.WithContext(ctx).Order("RANDOM()").Limit(1).Take(&word).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Internal(err, "random word")
	}
	return &word, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.Word{}).Count(&total).Error; err != nil {
		return 0, apperrors.Internal(err, "count words")
	}
	return total, nil
}

func likePattern(before, term, after string) string {
	return before + validation.EscapeLike(strings.ToLower(term)) + after
}
