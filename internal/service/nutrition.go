package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pageza/fitlog/backend/internal/clock"
	"github.com/pageza/fitlog/backend/internal/metrics"
	"github.com/pageza/fitlog/backend/internal/models"
	"github.com/pageza/fitlog/backend/internal/repository"
	"github.com/pageza/fitlog/backend/internal/types"
)

type NutritionService struct {
	repo   *repository.NutritionRepository
	engine *metrics.Engine
	clock  clock.Clock
}

func NewNutritionService(repo *repository.NutritionRepository, engine *metrics.Engine, clk clock.Clock) *NutritionService {
	return &NutritionService{repo: repo, engine: engine, clock: clk}
}

func (s *NutritionService) List(ctx context.Context, userID uuid.UUID, filters *models.RecordFilters) ([]models.Nutrition, error) {
	return s.repo.List(ctx, userID, filters)
}

func (s *NutritionService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateNutritionRequest) (*models.Nutrition, error) {
	n := &models.Nutrition{
		UserID:      userID,
		Date:        resolveDate(req.Date, s.clock),
		FoodItem:    req.FoodItem,
		Calories:    *req.Calories,
		Protein:     *req.Protein,
		Carbs:       *req.Carbs,
		Fats:        *req.Fats,
		MealType:    req.MealType,
		ServingSize: req.ServingSize,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create nutrition entry: %w", err)
	}
	return n, nil
}

func (s *NutritionService) Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateNutritionRequest) (*models.Nutrition, error) {
	fields := map[string]interface{}{}
	if req.FoodItem != nil {
		fields["food_item"] = *req.FoodItem
	}
	if req.Calories != nil {
		fields["calories"] = *req.Calories
	}
	if req.Protein != nil {
		fields["protein"] = *req.Protein
	}
	if req.Carbs != nil {
		fields["carbs"] = *req.Carbs
	}
	if req.Fats != nil {
		fields["fats"] = *req.Fats
	}
	if req.MealType != nil {
		fields["meal_type"] = *req.MealType
	}
	if req.ServingSize != nil {
		fields["serving_size"] = *req.ServingSize
	}
	if req.Date != nil {
		fields["date"] = req.Date.In(s.clock.Location()).UTC()
	}
	return s.repo.Update(ctx, userID, id, fields)
}

func (s *NutritionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *NutritionService) Stats(ctx context.Context, userID uuid.UUID, days int) (*metrics.NutritionStats, error) {
	return s.engine.NutritionStats(ctx, userID, days)
}
