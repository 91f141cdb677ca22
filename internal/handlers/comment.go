package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"microblog/internal/middleware"
	"microblog/internal/services"
	"microblog/internal/utils"
)

type CommentHandler struct {
	comments *services.CommentService
	cache    *utils.Cache
}

func NewCommentHandler(db *gorm.DB, cache *utils.Cache) *CommentHandler {
	return &CommentHandler{comments: services.NewCommentService(db), cache: cache}
}

type commentRequest struct {
	Text string `json:"text" binding:"required"`
}

// List returns the comments of post :id.
func (h *CommentHandler) List(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	comments, err := h.comments.ListForPost(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, commentViews(comments))
}

// Create adds a comment to post :id, recording the principal as its author.
func (h *CommentHandler) Create(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "text is required"})
		return
	}

	comment, err := h.comments.Create(id, middleware.Principal(c), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Delete(postDetailKey(id))
	c.JSON(http.StatusCreated, gin.H{"id": comment.ID, "text": comment.Text})
}

// Update rewrites the text of comment :id. The ownership gate has already
// established the principal as its author.
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "text is required"})
		return
	}

	comment, err := h.comments.Update(id, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Delete(postDetailKey(comment.PostID))
	c.JSON(http.StatusOK, gin.H{"id": comment.ID, "text": comment.Text})
}

// Delete runs the authorship-guarded deletion sequence for comment :id.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	postID, err := h.comments.Delete(id, middleware.Principal(c))
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Delete(postDetailKey(postID))
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
