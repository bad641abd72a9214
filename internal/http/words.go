package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/buzzwords/internal/audit"
	"github.com/mrlokans/buzzwords/internal/services"
)

const (
	MsgWordSubmitted    = "Word submitted successfully"
	MsgWordSubmitFailed = "Error submitting word"
	MsgWordsFailed      = "Error retrieving words"
	MsgSearchFailed     = "Error performing search"
	MsgUserWordsFailed  = "Error retrieving user's words"
)

// WordsController serves word submission and retrieval.
type WordsController struct {
	words  *services.WordService
	audit  *audit.Service
	logger *zap.Logger
}

func NewWordsController(words *services.WordService, auditService *audit.Service, logger *zap.Logger) *WordsController {
	return &WordsController{words: words, audit: auditService, logger: logger}
}

// Submit handles POST /submitWord/submit.
func (wc *WordsController) Submit(c *gin.Context) {
	var input services.SubmitWordInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, wc.logger, err, MsgWordSubmitFailed)
		return
	}

	word, err := wc.words.Submit(c.Request.Context(), input)
	if err != nil {
		wc.audit.LogWord(input.Username, "", input.Word, err)
		respondError(c, wc.logger, err, MsgWordSubmitFailed)
		return
	}
	wc.audit.LogWord(word.Username, word.ID, word.Word, nil)

	respondOK(c, MsgWordSubmitted, word)
}

// All handles GET /getWords/all.
func (wc *WordsController) All(c *gin.Context) {
	list, err := wc.words.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, wc.logger, err, MsgWordsFailed)
		return
	}
	respondList(c, list)
}

// ByLetter handles GET /getWords/alphabet/:letter.
func (wc *WordsController) ByLetter(c *gin.Context) {
	list, err := wc.words.ListByLetter(c.Request.Context(), c.Param("letter"))
	if err != nil {
		respondError(c, wc.logger, err, MsgWordsFailed)
		return
	}
	respondList(c, list)
}

// Search handles GET /getWords/search/:term?position=start|end|any.
func (wc *WordsController) Search(c *gin.Context) {
	term := c.Param("term")
	list, position, err := wc.words.Search(c.Request.Context(), term, c.Query("position"))
	if err != nil {
		respondError(c, wc.logger, err, MsgSearchFailed)
		return
	}

	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Count:   countOf(len(list)),
		Search:  &SearchInfo{Term: term, Position: string(position)},
		Data:    list,
	})
}

// ByUser handles GET /getWords/user/:username.
func (wc *WordsController) ByUser(c *gin.Context) {
	list, username, err := wc.words.ListByOwner(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, wc.logger, err, MsgUserWordsFailed)
		return
	}

	c.JSON(http.StatusOK, Envelope{
		Success:  true,
		Count:    countOf(len(list)),
		Username: username,
		Data:     list,
	})
}
