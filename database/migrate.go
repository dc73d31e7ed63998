package database

import (
	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

// Migrate applies the schema. AutoMigrate is additive only; destructive
// changes need a hand-written migration.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.JobPost{},
		&models.JobApplication{},
	)
}
