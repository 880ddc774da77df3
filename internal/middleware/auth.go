package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/epicquest/travel-backend/internal/core/domain"
)

// TokenVerifier validates a bearer token and resolves the party it names.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (domain.OwnerRef, error)
}

// Auth rejects requests without a valid bearer token and stores the resolved
// owner in the request context.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		owner, err := verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Request = c.Request.WithContext(WithOwner(c.Request.Context(), owner))
		c.Next()
	}
}
