package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// usernameHeader carries the caller identity. There is no real
// authentication layer; the header is a placeholder for one.
const usernameHeader = "x-username"

// username returns the caller identity, falling back to the guest sentinel.
func (s *Server) username(c *gin.Context) string {
	if name := c.GetHeader(usernameHeader); name != "" {
		return name
	}
	return s.cfg.GuestUsername
}

// requestLogger logs one line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
