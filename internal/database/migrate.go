package database

import (
	"gorm.io/gorm"

	"github.com/finstagram/backend/internal/models"
)

// Migrate creates the schema idempotently; it runs on every startup so a
// fresh database file comes up without a separate migration step.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Message{},
		&models.Notification{},
	)
}
