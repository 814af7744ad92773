package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kim0hyeon/CRUDBoard/internal/domain"
)

// modelInfo holds a domain model and its table name
type modelInfo struct {
	model     interface{}
	tableName string
}

// allModels lists every domain model in dependency order
func allModels() []modelInfo {
	return []modelInfo{
		{&domain.User{}, "users"},
		{&domain.Board{}, "boards"},
		{&domain.Post{}, "posts"},
		{&domain.Comment{}, "comments"},
	}
}

// AutoMigrate runs GORM auto-migration for all domain models. Tables, indexes
// and foreign key constraints follow the struct definitions in the domain
// package.
func AutoMigrate(db *gorm.DB) error {
	models := make([]interface{}, 0, 4)
	for _, m := range allModels() {
		models = append(models, m.model)
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// SafeAutoMigrate migrates one model at a time so a failure names the table.
// Existing tables only receive schema additions; missing tables are created.
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()
	models := allModels()

	logger.Info("Starting safe auto-migration",
		zap.Int("total_models", len(models)),
	)

	for _, m := range models {
		tableExists := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Info("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", tableExists),
		)
	}

	logger.Info("Safe auto-migration completed",
		zap.Int("tables_migrated", len(models)),
	)
	return nil
}

// SafeAutoMigrateWithRetry retries SafeAutoMigrate with linear backoff. Useful
// when the database container comes up slower than the service.
func SafeAutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = SafeAutoMigrate(db, logger)
		if err == nil {
			return nil
		}

		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", maxRetries),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}

	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
