package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// defaultOrigins are always allowed in addition to any configured origins
var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
}

// CORS returns a middleware that handles cross-origin requests. Only listed
// origins receive CORS headers.
func CORS(extraOrigins ...string) gin.HandlerFunc {
	allowedOrigins := append(append([]string{}, defaultOrigins...), extraOrigins...)

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
			c.Writer.Header().Set("Access-Control-Max-Age", "43200")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
