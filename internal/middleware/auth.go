package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"microblog/internal/services"
)

// PrincipalKey is the context key the authenticated username is bound to.
const PrincipalKey = "principal"

// AuthRequired verifies the bearer token and binds its subject as the
// request principal. On any verification failure the request short-circuits
// with 401 and no downstream handler runs.
func AuthRequired(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, err := tokens.Verify(extractToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Set(PrincipalKey, username)
		c.Next()
	}
}

// Principal returns the username bound by AuthRequired, or "" when the
// request was not authenticated.
func Principal(c *gin.Context) string {
	v, _ := c.Get(PrincipalKey)
	username, _ := v.(string)
	return username
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	return header
}
