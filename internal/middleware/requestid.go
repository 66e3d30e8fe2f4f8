package middleware

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"regexp"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
)

const (
	headerRequestID = "X-Request-ID"
	ctxKeyRequestID = "request_id"
	requestIDBytes  = 16
)

// Upstream ids are only accepted when they look like ids: alphanumerics and
// hyphens, at most 64 characters.
var upstreamIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)

var idFallbackSeq atomic.Uint64

// RequestIDConfig controls whether an incoming X-Request-ID is reused.
// TrustUpstream should only be set when a proxy in front of the API is
// known to stamp the header itself.
type RequestIDConfig struct {
	TrustUpstream bool
}

// RequestID tags every request with a fresh id, ignoring any upstream
// X-Request-ID header.
func RequestID() gin.HandlerFunc {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig tags every request with an id and makes it available
// three ways: in the gin context under "request_id", as the X-Request-ID
// response header, and as a context attr picked up by the structured logger.
func RequestIDWithConfig(cfg RequestIDConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id string
		if cfg.TrustUpstream {
			if upstream := c.GetHeader(headerRequestID); upstreamIDPattern.MatchString(upstream) {
				id = upstream
			}
		}
		if id == "" {
			id = newRequestID()
		}

		c.Set(ctxKeyRequestID, id)
		c.Header(headerRequestID, id)
		c.Request = c.Request.WithContext(
			logger.WithContextAttrs(c.Request.Context(), slog.String("request_id", id)),
		)

		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "" when the
// middleware did not run.
func GetRequestID(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyRequestID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func newRequestID() string {
	b := make([]byte, requestIDBytes)
	if _, err := rand.Read(b); err != nil {
		// Should not happen; fall back to time plus a process-local counter
		// so ids stay unique.
		binary.BigEndian.PutUint64(b[:8], uint64(time.Now().UnixNano()))
		binary.BigEndian.PutUint64(b[8:], idFallbackSeq.Add(1))
	}
	return hex.EncodeToString(b)
}
