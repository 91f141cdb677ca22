package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"microblog/internal/models"
	"microblog/internal/services"
	"microblog/internal/utils"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *services.TokenService
}

func NewAuthHandler(db *gorm.DB, tokens *services.TokenService) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens}
}

type credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
		return
	}

	var existing models.User
	err := h.db.First(&existing, "username = ?", req.Username).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "username already taken"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, err)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	user := models.User{Username: req.Username, Password: hash}
	if err := h.db.Create(&user).Error; err != nil {
		// A concurrent register can still trip the unique index here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"message": "username already taken"})
			return
		}
		respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
		return
	}

	var user models.User
	if err := h.db.First(&user, "username = ?", req.Username).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
