package transport

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/caseflow/caseflow/internal/adapter/postgres/idempotency"
)

// noisyPaths are high-frequency read paths logged at Debug to keep Info clean.
var noisyPaths = map[string]bool{
	"/api/queue/status": true,
	"/api/agents/":      true,
	"/api/ws":           true,
}

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.Request.Method == "OPTIONS" {
			return
		}
		if c.Request.Method == "GET" && noisyPaths[c.Request.URL.Path] {
			return
		}

		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS, PUT")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Idempotency-Key")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// bodyCapture tees the response so a successful body can be replayed for a
// duplicate idempotency key.
type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware makes POSTs carrying an Idempotency-Key header safe
// to retry: the first execution's response is stored and duplicates get it
// back without re-running the handler.
func IdempotencyMiddleware(repo *idempotency.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			c.Next()
			return
		}

		stored, found, err := repo.Check(c.Request.Context(), key)
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "idempotency check failed", "key", key, "error", err)
			c.Next()
			return
		}
		if found {
			c.Data(http.StatusOK, "application/json", stored)
			c.Abort()
			return
		}

		capture := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = capture
		c.Next()

		if status := capture.Status(); status >= 200 && status < 300 {
			if err := repo.Store(c.Request.Context(), key, c.FullPath(), capture.buf.Bytes()); err != nil {
				slog.ErrorContext(c.Request.Context(), "idempotency store failed", "key", key, "error", err)
			}
		}
	}
}
