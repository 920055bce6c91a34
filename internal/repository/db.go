package repository

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bid4service/internal/models"
	"bid4service/utils"
)

// OpenGorm connects to Postgres with bounded retry, runs migrations, and
// returns the handle. Pool lifecycle belongs to the caller (the process
// entry point), not to this package.
func OpenGorm(dsn string) (*gorm.DB, error) {
	const maxAttempts = 10

	var db *gorm.DB
	var err error
	for i := 1; i <= maxAttempts; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			break
		}
		utils.Warn("failed to connect to DB, retrying", map[string]any{
			"attempt": i,
			"max":     maxAttempts,
			"error":   err.Error(),
		})
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect after %d attempts: %w", maxAttempts, err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Bid{},
		&models.Project{},
		&models.Milestone{},
		&models.Payment{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}
