package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// introText answers a route group's root with a plain-text name.
func introText(text string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, text)
	}
}
