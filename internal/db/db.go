package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"veriwork/internal/models"
)

// Connect opens the Postgres database and migrates the worker tables.
func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connection to db failed: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get db from GORM: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	for _, model := range []any{
		&models.Worker{},
		&models.EducationalDocument{},
		&models.ExtractionLog{},
		&models.VerificationLog{},
	} {
		if err := gdb.AutoMigrate(model); err != nil {
			return nil, fmt.Errorf("automigration failed for %T: %w", model, err)
		}
	}

	return gdb, nil
}
