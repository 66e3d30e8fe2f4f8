package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
)

const (
	authHeader     = "Authorization"
	bearerPrefix   = "Bearer "
	userContextKey = "user_id"
)

// Auth returns a gin middleware that requires a valid Bearer token on every
// request. The authenticated user id is stored in the gin.Context under
// "user_id".
func Auth(jwtSvc jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeader)
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c)
			return
		}

		token, err := jwtSvc.ValidateAndParse(strings.TrimPrefix(header, bearerPrefix))
		if err != nil || token == nil {
			abortUnauthorized(c)
			return
		}

		c.Set(userContextKey, token.UserID)
		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the gin.Context.
// Returns an empty string if the request is unauthenticated.
func GetUserID(c *gin.Context) string {
	if id, exists := c.Get(userContextKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "unauthorized",
	})
}
