package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig configures cross-origin access for the admin dashboard and
// any public site consuming the API.
type CORSConfig struct {
	// AllowOrigins lists origins permitted to call the API. ["*"] allows
	// everyone and is the debug default.
	AllowOrigins []string

	// AllowMethods and AllowHeaders are reflected verbatim into the
	// corresponding Access-Control headers.
	AllowMethods []string
	AllowHeaders []string

	// AllowCredentials permits cookies and Authorization headers on
	// cross-origin requests. With credentials on, the matched origin is
	// echoed instead of "*".
	AllowCredentials bool

	// MaxAge caches preflight results, in seconds.
	MaxAge string
}

// DefaultCORSConfig is the permissive development setup.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		MaxAge:       "86400",
	}
}

// CORS applies DefaultCORSConfig.
func CORS() gin.HandlerFunc {
	return CORSWithConfig(DefaultCORSConfig())
}

// CORSWithConfig handles cross-origin requests: same-origin traffic passes
// untouched, disallowed origins get no CORS headers, and preflight OPTIONS
// requests short-circuit with 204.
func CORSWithConfig(cfg CORSConfig) gin.HandlerFunc {
	wildcard := len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*"
	methods := strings.Join(cfg.AllowMethods, ", ")
	headers := strings.Join(cfg.AllowHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		// Caches must key on Origin whenever the response depends on it,
		// allowed or not.
		c.Writer.Header().Add("Vary", "Origin")

		switch {
		case wildcard && !cfg.AllowCredentials:
			c.Header("Access-Control-Allow-Origin", "*")
		case wildcard || originAllowed(cfg.AllowOrigins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
		default:
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Max-Age", cfg.MaxAge)
		if cfg.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(allowed []string, origin string) bool {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}
