package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripmate/internal/auth"
)

// Authenticator verifies a bearer token and returns the caller identity.
type Authenticator interface {
	Verify(token string) (*auth.Identity, error)
}

const identityKey = "callerIdentity"

// AuthMiddleware rejects requests that lack a verified caller identity.
// A missing or invalid token is an error, never a silent default.
func AuthMiddleware(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
				"kind":  "unauthenticated",
			})
			return
		}

		identity, err := authenticator.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
				"kind":  "unauthenticated",
			})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFromContext returns the verified caller identity set by AuthMiddleware.
func IdentityFromContext(c *gin.Context) (*auth.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*auth.Identity)
	return identity, ok
}
