package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fitlog/backend/internal/models"
)

// NutritionRepository stores nutrition entries
type NutritionRepository struct {
	ownedStore[models.Nutrition]
}

func NewNutritionRepository(db *gorm.DB) *NutritionRepository {
	return &NutritionRepository{ownedStore[models.Nutrition]{db: db}}
}

// List returns entries of userID, newest first, narrowed by meal type and a
// case-insensitive food item search
func (r *NutritionRepository) List(ctx context.Context, userID uuid.UUID, filters *models.RecordFilters) ([]models.Nutrition, error) {
	var scopes []func(*gorm.DB) *gorm.DB
	if filters != nil {
		if filters.MealType != "" {
			m := filters.MealType
			scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
				return db.Where("meal_type = ?", m)
			})
		}
		if s := strings.TrimSpace(filters.Search); s != "" {
			pattern := "%" + escapeLike(strings.ToLower(s)) + "%"
			scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
				return db.Where("LOWER(food_item) LIKE ? ESCAPE '\\'", pattern)
			})
		}
	}
	return r.ownedStore.List(ctx, userID, filters, scopes...)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
