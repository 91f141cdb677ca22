package services

import (
	"errors"

	"gorm.io/gorm"

	"microblog/internal/models"
)

// PostSummary is one row of the posts index, with the vote tally aggregated
// in the same query.
type PostSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Votes       int    `json:"votes"`
}

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

func (s *PostService) List() ([]PostSummary, error) {
	summaries := make([]PostSummary, 0)
	err := s.db.Model(&models.Post{}).
		Select("posts.id, posts.title, posts.description, COALESCE(SUM(votes.direction), 0) AS votes").
		Joins("LEFT JOIN votes ON votes.post_id = posts.id").
		Group("posts.id").
		Order("posts.id").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *PostService) Get(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostService) Create(username, title, description, body string) (*models.Post, error) {
	post := models.Post{
		Title:       title,
		Description: description,
		Body:        body,
		Username:    username,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) Update(id uint, title, description, body string) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	post.Title = title
	post.Description = description
	post.Body = body
	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes a post together with its votes, comments and their
// authorship records, all in one transaction.
func (s *PostService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("post_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}

		var commentIDs []uint
		if err := tx.Model(&models.Comment{}).Where("post_id = ?", id).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&models.CommentAuthor{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&post).Error
	})
}
