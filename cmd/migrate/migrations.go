package main

import (
	"gorm.io/gorm"

	"github.com/youssefhammani/file-rouge-final/internal/models"
)

// registerModels returns all models that need migration
func registerModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.SavedJob{},
	}
}

// runMigrations executes all database migrations
func runMigrations(db *gorm.DB) error {
	if err := enableUUIDExtension(db); err != nil {
		return err
	}

	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}

	// Custom migrations AutoMigrate can't express
	migrations := []func(*gorm.DB) error{
		lowercaseEmails,
		addJobListingIndex,
	}
	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}

	return nil
}

// enableUUIDExtension ensures gen_random_uuid() is available
func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

// lowercaseEmails normalizes any email written before the service started
// lowercasing on the way in. The unique index on email then holds
// case-insensitively.
func lowercaseEmails(db *gorm.DB) error {
	return db.Exec(`UPDATE users SET email = lower(email) WHERE email <> lower(email)`).Error
}

// addJobListingIndex backs the public listing's filter and ordering
func addJobListingIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_jobs_active_posted
		ON jobs(posted_date DESC)
		WHERE is_active = true
	`).Error
}
