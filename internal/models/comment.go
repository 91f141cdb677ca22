package models

import (
	"time"
)

// Comment carries no owner column; authorship lives in CommentAuthor.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentAuthor links a comment to the user who wrote it, one row per
// comment. It is the only stored source of comment ownership.
type CommentAuthor struct {
	CommentID uint   `gorm:"primaryKey;autoIncrement:false" json:"comment_id"`
	Username  string `gorm:"not null;index;size:50" json:"username"`
}

func (CommentAuthor) TableName() string {
	return "comment_user"
}
