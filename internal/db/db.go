package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"microblog/internal/models"
)

// Init opens the Postgres connection and runs migrations. The handle is
// returned to the caller for injection; there is no package-level state.
func Init(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	log.Println("Database connection established")
	return gdb, nil
}

// Migrate is separate from Init so tests can run it against their own
// database handle.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.CommentAuthor{},
		&models.Vote{},
	)
}
