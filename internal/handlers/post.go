package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"microblog/internal/middleware"
	"microblog/internal/models"
	"microblog/internal/services"
	"microblog/internal/utils"
)

type PostHandler struct {
	posts    *services.PostService
	comments *services.CommentService
	votes    *services.VoteLedger
	cache    *utils.Cache
}

func NewPostHandler(db *gorm.DB, cache *utils.Cache) *PostHandler {
	return &PostHandler{
		posts:    services.NewPostService(db),
		comments: services.NewCommentService(db),
		votes:    services.NewVoteLedger(db),
		cache:    cache,
	}
}

type postRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Body        string `json:"body"`
}

type commentView struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

func commentViews(comments []models.Comment) []commentView {
	views := make([]commentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, commentView{ID: comment.ID, Text: comment.Text})
	}
	return views
}

func (h *PostHandler) List(c *gin.Context) {
	if cached := h.cache.Get(postListKey); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	summaries, err := h.posts.List()
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Set(postListKey, summaries, postListTTL)
	c.JSON(http.StatusOK, summaries)
}

func (h *PostHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	key := postDetailKey(id)
	if cached := h.cache.Get(key); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	post, err := h.posts.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	comments, err := h.comments.ListForPost(id)
	if err != nil {
		respondError(c, err)
		return
	}
	tally, err := h.votes.Tally(id)
	if err != nil {
		respondError(c, err)
		return
	}

	payload := gin.H{
		"id":          post.ID,
		"title":       post.Title,
		"description": post.Description,
		"body":        post.Body,
		"body_html":   utils.RenderMarkdown(post.Body),
		"username":    post.Username,
		"comments":    commentViews(comments),
		"votes":       tally,
	}

	h.cache.Set(key, payload, postDetailTTL)
	c.JSON(http.StatusOK, payload)
}

func (h *PostHandler) Create(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
		return
	}

	post, err := h.posts.Create(middleware.Principal(c), req.Title, req.Description, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Delete(postListKey)
	c.JSON(http.StatusCreated, gin.H{
		"id":          post.ID,
		"title":       post.Title,
		"description": post.Description,
		"body":        post.Body,
		"username":    post.Username,
	})
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
		return
	}

	post, err := h.posts.Update(id, req.Title, req.Description, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Delete(postListKey)
	h.cache.Delete(postDetailKey(id))
	c.JSON(http.StatusOK, gin.H{
		"id":          post.ID,
		"title":       post.Title,
		"description": post.Description,
		"body":        post.Body,
		"username":    post.Username,
	})
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.posts.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	h.cache.Delete(postListKey)
	h.cache.Delete(postDetailKey(id))
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
