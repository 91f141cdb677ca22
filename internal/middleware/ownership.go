package middleware

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"microblog/internal/services"
)

// RequireOwner lets the request through only when the authenticated
// principal owns the resource named by the :id route param. It must run
// after AuthRequired; a request without a bound principal is rejected
// outright. A missing resource is 404 and a mismatched owner is 403, and
// neither response reveals who the owner is.
func RequireOwner(resolver services.OwnerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := Principal(c)
		if principal == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
			return
		}

		owner, err := resolver.ResolveOwner(uint(id))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Not Found"})
				return
			}
			log.Printf("resolve owner: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		if owner != principal {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		c.Next()
	}
}
