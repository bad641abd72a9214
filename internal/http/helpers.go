package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/buzzwords/internal/apperrors"
)

const MsgInvalidBody = "Invalid JSON body"

// SearchInfo echoes the effective search parameters.
type SearchInfo struct {
	Term     string `json:"term"`
	Position string `json:"position"`
}

// Envelope is the response wrapper every JSON endpoint uses.
type Envelope struct {
	Success  bool                   `json:"success"`
	Message  string                 `json:"message,omitempty"`
	Count    *int                   `json:"count,omitempty"`
	Username string                 `json:"username,omitempty"`
	Search   *SearchInfo            `json:"search,omitempty"`
	User     any                    `json:"user,omitempty"`
	Data     any                    `json:"data,omitempty"`
	Error    string                 `json:"error,omitempty"` // machine-readable error kind
	Fields   []string               `json:"fields,omitempty"`
	Errors   []apperrors.FieldError `json:"errors,omitempty"`
}

func countOf(n int) *int {
	return &n
}

// respondOK sends a 200 success envelope carrying data.
func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// respondList sends a 200 list envelope with its count.
func respondList[T any](c *gin.Context, items []T) {
	c.JSON(http.StatusOK, Envelope{Success: true, Count: countOf(len(items)), Data: items})
}

// failure builds the envelope for err. Internal errors are logged and
// replaced by fallback so no driver detail reaches the client.
func failure(c *gin.Context, logger *zap.Logger, err error, fallback string) (int, Envelope) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperrors.KindInternal {
		logger.Error(fallback,
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		return http.StatusInternalServerError, Envelope{
			Message: fallback,
			Error:   string(apperrors.KindInternal),
		}
	}

	return appErr.HTTPStatus(), Envelope{
		Message: appErr.Message,
		Error:   string(appErr.Kind),
		Fields:  appErr.Fields,
		Errors:  appErr.Violations,
	}
}

// respondError translates err into a failure envelope with the status its
// kind maps to.
func respondError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	status, body := failure(c, logger, err, fallback)
	c.JSON(status, body)
}

// bindJSON decodes the request body into dst. An empty body leaves dst
// untouched so the required-field checks report what is missing.
func bindJSON(c *gin.Context, dst any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperrors.Wrap(err, apperrors.KindInvalidArgument, MsgInvalidBody)
	}
	return nil
}

// parsePositiveQuery reads an optional positive integer query parameter.
// Absent means 0, which callers treat as "use the default".
func parsePositiveQuery(c *gin.Context, name string) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, apperrors.InvalidArgumentf("%s must be a positive integer", name)
	}
	return n, nil
}
