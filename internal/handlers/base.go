package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"microblog/internal/services"
)

const (
	postListKey   = "posts:list"
	postListTTL   = 30 * time.Second
	postDetailTTL = time.Minute
)

func postDetailKey(id uint) string {
	return fmt.Sprintf("posts:detail:%d", id)
}

// respondError maps service errors onto the API's status codes. Store
// failures are logged and surfaced as a generic message only.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
	case errors.Is(err, services.ErrInvalidDirection):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrMissingToken), errors.Is(err, services.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

// parseID reads the :id route param; a malformed id answers 400 itself.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
