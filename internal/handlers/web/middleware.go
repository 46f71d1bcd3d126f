package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// quietPaths are polled by infrastructure and left out of the access log
var quietPaths = map[string]bool{
	"/healthz": true,
	"/metrics": true,
}

// accessLog logs each request through slog, at a level matching its status
func accessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		if quietPaths[path] {
			return
		}

		status := c.Writer.Status()
		attrs := []any{
			"status", status,
			"method", c.Request.Method,
			"path", path,
			"ip", c.ClientIP(),
			"latency", time.Since(start),
		}
		if msg := c.Errors.ByType(gin.ErrorTypePrivate).String(); msg != "" {
			attrs = append(attrs, "error", msg)
		}

		ctx := c.Request.Context()
		switch {
		case status >= http.StatusInternalServerError:
			logger.ErrorContext(ctx, "request handled", attrs...)
		case status >= http.StatusBadRequest:
			logger.WarnContext(ctx, "request handled", attrs...)
		default:
			logger.InfoContext(ctx, "request handled", attrs...)
		}
	}
}
