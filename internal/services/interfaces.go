package services

import (
	"context"

	"github.com/mrlokans/buzzwords/internal/database/words"
	"github.com/mrlokans/buzzwords/internal/entities"
)

// WordStore provides access to dictionary entries.
type WordStore interface {
	Create(ctx context.Context, word *entities.Word) error
	GetByID(ctx context.Context, id string) (*entities.Word, error)
	List(ctx context.Context, filter words.Filter) ([]entities.Word, error)
	Random(ctx context.Context) (*entities.Word, error)
	Count(ctx context.Context) (int64, error)
}

// BookmarkStore provides access to bookmarks.
type BookmarkStore interface {
	Create(ctx context.Context, bookmark *entities.Bookmark) error
	ListForUser(ctx context.Context, username string, limit, offset int) ([]entities.Bookmark, error)
	CountForUser(ctx context.Context, username string) (int64, error)
	DeleteOwned(ctx context.Context, id, username string) (*entities.Bookmark, error)
	Count(ctx context.Context) (int64, error)
}

// UserCounter is the only user access statistics need.
type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}
