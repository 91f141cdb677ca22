package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"microblog/internal/db"
	"microblog/internal/models"
)

func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, username string) {
	t.Helper()
	if err := gdb.Create(&models.User{Username: username, Password: "x"}).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
}

func seedPost(t *testing.T, gdb *gorm.DB, username, title string) models.Post {
	t.Helper()
	post := models.Post{Title: title, Username: username}
	if err := gdb.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return post
}
