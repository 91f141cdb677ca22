package models

import (
	"time"
)

type User struct {
	Username  string    `gorm:"primaryKey;size:50" json:"username"`
	Password  string    `gorm:"not null" json:"-"` // Hash
	CreatedAt time.Time `json:"created_at"`
}
