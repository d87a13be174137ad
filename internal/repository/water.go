package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fitlog/backend/internal/models"
)

// WaterRepository stores the per-day water records
type WaterRepository struct {
	ownedStore[models.WaterIntake]
}

func NewWaterRepository(db *gorm.DB) *WaterRepository {
	return &WaterRepository{ownedStore[models.WaterIntake]{db: db}}
}

// List returns water days of userID, newest first
func (r *WaterRepository) List(ctx context.Context, userID uuid.UUID, filters *models.RecordFilters) ([]models.WaterIntake, error) {
	return r.ownedStore.List(ctx, userID, filters)
}

// FindDay returns the record of userID dated within [start, end)
func (r *WaterRepository) FindDay(ctx context.Context, userID uuid.UUID, start, end time.Time) (*models.WaterIntake, error) {
	var rec models.WaterIntake
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start.UTC(), end.UTC()).
		First(&rec).Error
	if err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

// UpdateDay overwrites glasses and amount of the record of userID dated
// within [start, end). Identity and creation time are kept.
func (r *WaterRepository) UpdateDay(ctx context.Context, userID uuid.UUID, start, end time.Time, glasses int, amount float64) (*models.WaterIntake, error) {
	res := r.db.WithContext(ctx).
		Model(&models.WaterIntake{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start.UTC(), end.UTC()).
		Updates(map[string]interface{}{"glasses": glasses, "amount": amount})
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindDay(ctx, userID, start, end)
}
