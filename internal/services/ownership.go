package services

import (
	"errors"

	"gorm.io/gorm"

	"microblog/internal/models"
)

// OwnerResolver resolves the username owning a resource. Posts and comments
// store ownership differently, so each gets its own resolver behind this
// contract.
type OwnerResolver interface {
	ResolveOwner(id uint) (string, error)
}

// PostOwnerResolver reads the owner straight off the posts row.
type PostOwnerResolver struct {
	DB *gorm.DB
}

func (r PostOwnerResolver) ResolveOwner(id uint) (string, error) {
	var post models.Post
	if err := r.DB.Select("username").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return post.Username, nil
}

// CommentOwnerResolver goes through the comment_user join record. A comment
// without an authorship row resolves to ErrNotFound; it is never treated as
// ownerless.
type CommentOwnerResolver struct {
	DB *gorm.DB
}

func (r CommentOwnerResolver) ResolveOwner(id uint) (string, error) {
	var author models.CommentAuthor
	if err := r.DB.First(&author, "comment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return author.Username, nil
}
