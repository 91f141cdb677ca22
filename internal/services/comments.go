package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"microblog/internal/models"
)

// CommentService owns comment reads and writes, including the two-step
// deletion that keeps the comment row and its authorship record consistent.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Create inserts the comment and its authorship join record in one
// transaction; a comment must never exist without its author row.
func (s *CommentService) Create(postID uint, username, text string) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}

		comment = models.Comment{PostID: postID, Text: text}
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		author := models.CommentAuthor{CommentID: comment.ID, Username: username}
		return tx.Create(&author).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) ListForPost(postID uint) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	err := s.db.Where("post_id = ?", postID).Order("id").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentService) Update(id uint, text string) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	comment.Text = text
	if err := s.db.Save(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment on behalf of its author and reports the id of the
// post it belonged to. The authorship row matching (commentID, username) is
// deleted first, returning the deleted row; if none matched, or the returned
// row names a different comment, the whole operation aborts and the comment
// row is untouched. Both deletes commit or roll back together.
func (s *CommentService) Delete(commentID uint, username string) (uint, error) {
	var postID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var author models.CommentAuthor
		res := tx.Clauses(clause.Returning{}).
			Where("comment_id = ? AND username = ?", commentID, username).
			Delete(&author)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		// Cross-check on the returned row. The Where clause already pins
		// comment_id, so no reachable path trips this; it only aborts if
		// RETURNING ever hands back a row other than the one deleted.
		if author.CommentID != 0 && author.CommentID != commentID {
			return ErrForbidden
		}

		var comment models.Comment
		if err := tx.First(&comment, commentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		postID = comment.PostID
		return tx.Delete(&comment).Error
	})
	if err != nil {
		return 0, err
	}
	return postID, nil
}
