package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const MsgReadOnly = "This action is disabled in read-only mode"

// ReadOnly blocks write operations. Reads always pass, and so does login
// since it changes nothing.
type ReadOnly struct {
	enabled bool
}

func NewReadOnly(enabled bool) *ReadOnly {
	return &ReadOnly{enabled: enabled}
}

func (m *ReadOnly) IsEnabled() bool {
	return m != nil && m.enabled
}

// Handler returns a Gin middleware that blocks write operations.
func (m *ReadOnly) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.IsEnabled() {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if m.isAllowedPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, Envelope{
			Message: MsgReadOnly,
			Error:   "READ_ONLY",
		})
	}
}

func (m *ReadOnly) isAllowedPath(path string) bool {
	switch path {
	case "/auth/login", "/auth/login/":
		return true
	}
	return false
}
