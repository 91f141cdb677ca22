package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"microblog/internal/middleware"
	"microblog/internal/services"
	"microblog/internal/utils"
)

type VoteHandler struct {
	votes *services.VoteLedger
	cache *utils.Cache
}

func NewVoteHandler(db *gorm.DB, cache *utils.Cache) *VoteHandler {
	return &VoteHandler{votes: services.NewVoteLedger(db), cache: cache}
}

// Cast records the caller's up/down vote on a post and returns the net
// tally. Repeating a vote is a no-op; the opposite direction flips the
// stored row in place.
func (h *VoteHandler) Cast(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	delta, err := services.ParseDirection(c.Param("direction"))
	if err != nil {
		respondError(c, err)
		return
	}

	tally, err := h.votes.Cast(id, middleware.Principal(c), delta)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Delete(postListKey)
	h.cache.Delete(postDetailKey(id))
	c.JSON(http.StatusOK, gin.H{"votes": tally})
}
