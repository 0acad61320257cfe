package middleware

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

// CORS mirrors the headers the booking API always answered with so the
// admin page can be served from another origin during development.
func CORS(allowOrigin string) ginext.HandlerFunc {
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return func(c *ginext.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", allowOrigin)
		h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
