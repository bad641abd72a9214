package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/buzzwords/internal/audit"
	"github.com/mrlokans/buzzwords/internal/services"
)

const (
	MsgBookmarkAdded        = "Word bookmarked successfully"
	MsgBookmarkAddFailed    = "Error bookmarking word"
	MsgBookmarksFailed      = "Error fetching bookmarks"
	MsgBookmarkRemoved      = "Bookmark removed successfully"
	MsgBookmarkRemoveFailed = "Error removing bookmark"
)

// AddBookmarkRequest is the body of POST /bookmarks/add.
type AddBookmarkRequest struct {
	WordID   string `json:"wordId"`
	Username string `json:"username"`
}

// RemoveBookmarkRequest is the body of DELETE /bookmarks/remove/:bookmarkId.
type RemoveBookmarkRequest struct {
	Username string `json:"username"`
}

type BookmarksController struct {
	bookmarks *services.BookmarkService
	audit     *audit.Service
	logger    *zap.Logger
}

func NewBookmarksController(bookmarks *services.BookmarkService, auditService *audit.Service, logger *zap.Logger) *BookmarksController {
	return &BookmarksController{bookmarks: bookmarks, audit: auditService, logger: logger}
}

// Add handles POST /bookmarks/add.
func (bc *BookmarksController) Add(c *gin.Context) {
	var req AddBookmarkRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, bc.logger, err, MsgBookmarkAddFailed)
		return
	}

	bookmark, err := bc.bookmarks.Add(c.Request.Context(), req.WordID, req.Username)
	if err != nil {
		bc.audit.LogBookmark(req.Username, "bookmark_add", "", "word "+req.WordID, err)
		respondError(c, bc.logger, err, MsgBookmarkAddFailed)
		return
	}
	bc.audit.LogBookmark(bookmark.Username, "bookmark_add", bookmark.ID, "word "+bookmark.WordID, nil)

	respondOK(c, MsgBookmarkAdded, bookmark)
}

// ListForUser handles GET /bookmarks/user/:username?page=&limit=.
func (bc *BookmarksController) ListForUser(c *gin.Context) {
	page, err := parsePositiveQuery(c, "page")
	if err != nil {
		respondError(c, bc.logger, err, MsgBookmarksFailed)
		return
	}
	limit, err := parsePositiveQuery(c, "limit")
	if err != nil {
		respondError(c, bc.logger, err, MsgBookmarksFailed)
		return
	}

	result, err := bc.bookmarks.ListForUser(c.Request.Context(), c.Param("username"), page, limit)
	if err != nil {
		respondError(c, bc.logger, err, MsgBookmarksFailed)
		return
	}

	respondOK(c, "", result)
}

// Remove handles DELETE /bookmarks/remove/:bookmarkId with the owner's
// username in the body.
func (bc *BookmarksController) Remove(c *gin.Context) {
	var req RemoveBookmarkRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, bc.logger, err, MsgBookmarkRemoveFailed)
		return
	}

	bookmarkID := c.Param("bookmarkId")
	removed, err := bc.bookmarks.Remove(c.Request.Context(), bookmarkID, req.Username)
	bc.audit.LogBookmark(req.Username, "bookmark_remove", bookmarkID, "", err)
	if err != nil {
		respondError(c, bc.logger, err, MsgBookmarkRemoveFailed)
		return
	}

	respondOK(c, MsgBookmarkRemoved, removed)
}
