package models

import (
	"time"
)

// Vote holds at most one row per (post, user) pair; a repeat vote overwrites
// Direction instead of adding a row.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_votes_post_user" json:"post_id"`
	Username  string    `gorm:"not null;size:50;uniqueIndex:idx_votes_post_user" json:"username"`
	Direction int       `gorm:"not null" json:"direction"` // 1 or -1
	CreatedAt time.Time `json:"created_at"`
}
