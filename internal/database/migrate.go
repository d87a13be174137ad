package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/fitlog/backend/internal/logger"
	"github.com/pageza/fitlog/backend/internal/models"
)

// RunMigrations creates or updates every table and index, including the
// unique per-day water index
func RunMigrations(db *gorm.DB) error {
	logger.L().Info("running auto-migration", zap.String("dialect", db.Dialector.Name()))

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	if !db.Migrator().HasIndex(&models.WaterIntake{}, "idx_water_user_day") {
		return fmt.Errorf("unique index idx_water_user_day missing after migration")
	}

	logger.L().Info("migrations applied")
	return nil
}
