package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fitlog/backend/internal/models"
)

// WorkoutRepository stores workout entries
type WorkoutRepository struct {
	ownedStore[models.Workout]
}

func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{ownedStore[models.Workout]{db: db}}
}

// List returns workouts of userID, newest first, optionally of one type
func (r *WorkoutRepository) List(ctx context.Context, userID uuid.UUID, filters *models.RecordFilters) ([]models.Workout, error) {
	var scopes []func(*gorm.DB) *gorm.DB
	if filters != nil && filters.WorkoutType != "" {
		t := filters.WorkoutType
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("type = ?", t)
		})
	}
	return r.ownedStore.List(ctx, userID, filters, scopes...)
}
