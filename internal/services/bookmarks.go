package services

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/mrlokans/buzzwords/internal/apperrors"
	"github.com/mrlokans/buzzwords/internal/config"
	"github.com/mrlokans/buzzwords/internal/entities"
	"github.com/mrlokans/buzzwords/internal/validation"
)

const (
	MsgBookmarkFieldsRequired = "Word ID and username are required"
	MsgRemoveFieldsRequired   = "Bookmark ID and username are required"
	MsgInvalidPage            = "page must be a positive integer"
	MsgInvalidLimit           = "limit must be a positive integer"
	MsgPageOutOfRange         = "page is too large"
)

// Pagination describes one page of a listing.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// BookmarkPage is one page of a user's bookmarks.
type BookmarkPage struct {
	Bookmarks  []entities.Bookmark `json:"bookmarks"`
	Pagination Pagination          `json:"pagination"`
}

type BookmarkService struct {
	bookmarks    BookmarkStore
	words        WordStore
	defaultLimit int
	maxLimit     int
}

func NewBookmarkService(bookmarks BookmarkStore, words WordStore, cfg config.Bookmarks) *BookmarkService {
	return &BookmarkService{
		bookmarks:    bookmarks,
		words:        words,
		defaultLimit: cfg.DefaultLimit,
		maxLimit:     cfg.MaxLimit,
	}
}

// Add bookmarks an existing word for username and returns the bookmark
// with its word resolved.
func (s *BookmarkService) Add(ctx context.Context, wordID, username string) (*entities.Bookmark, error) {
	wordID = validation.NormalizeText(wordID)
	username = validation.NormalizeKey(username)
	missing := validation.MissingFields(
		validation.Field{Name: "wordId", Value: wordID},
		validation.Field{Name: "username", Value: username},
	)
	if len(missing) > 0 {
		return nil, apperrors.MissingField(MsgBookmarkFieldsRequired, missing...)
	}

	word, err := s.words.GetByID(ctx, wordID)
	if err != nil {
		return nil, err
	}

	bookmark := &entities.Bookmark{WordID: word.ID, Username: username}
	if err := s.bookmarks.Create(ctx, bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

// ListForUser returns a page of username's bookmarks, newest first. A zero
// page or limit selects the default; limits above the maximum are clamped.
func (s *BookmarkService) ListForUser(ctx context.Context, username string, page, limit int) (*BookmarkPage, error) {
	username = validation.NormalizeKey(username)
	if username == "" {
		return nil, apperrors.MissingField(MsgUsernameRequired, "username")
	}
	page, limit, err := s.normalizePaging(page, limit)
	if err != nil {
		return nil, err
	}

	var (
		items []entities.Bookmark
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.bookmarks.ListForUser(gctx, username, limit, (page-1)*limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.bookmarks.CountForUser(gctx, username)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &BookmarkPage{
		Bookmarks: items,
		Pagination: Pagination{
			CurrentPage:  page,
			TotalPages:   int((total + int64(limit) - 1) / int64(limit)),
			TotalItems:   total,
			ItemsPerPage: limit,
		},
	}, nil
}

// Remove deletes bookmarkID only if it belongs to username.
func (s *BookmarkService) Remove(ctx context.Context, bookmarkID, username string) (*entities.Bookmark, error) {
	bookmarkID = validation.NormalizeText(bookmarkID)
	username = validation.NormalizeKey(username)
	missing := validation.MissingFields(
		validation.Field{Name: "bookmarkId", Value: bookmarkID},
		validation.Field{Name: "username", Value: username},
	)
	if len(missing) > 0 {
		return nil, apperrors.MissingField(MsgRemoveFieldsRequired, missing...)
	}
	return s.bookmarks.DeleteOwned(ctx, bookmarkID, username)
}

func (s *BookmarkService) normalizePaging(page, limit int) (int, int, error) {
	if page < 0 {
		return 0, 0, apperrors.InvalidArgument(MsgInvalidPage)
	}
	if limit < 0 {
		return 0, 0, apperrors.InvalidArgument(MsgInvalidLimit)
	}
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = s.defaultLimit
	}
	if s.maxLimit > 0 && limit > s.maxLimit {
		limit = s.maxLimit
	}
	// (page-1)*limit must not overflow the offset.
	if page-1 > math.MaxInt/limit {
		return 0, 0, apperrors.InvalidArgument(MsgPageOutOfRange)
	}
	return page, limit, nil
}
