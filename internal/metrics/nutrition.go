package metrics

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/fitlog/backend/internal/models"
)

type NutritionSummary struct {
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFats     float64 `json:"totalFats"`
	AvgCalories   float64 `json:"avgCalories"`
	AvgProtein    float64 `json:"avgProtein"`
	AvgCarbs      float64 `json:"avgCarbs"`
	AvgFats       float64 `json:"avgFats"`
}

// macros accumulates the four nutrition totals
type macros struct {
	calories, protein, carbs, fats float64
}

func (m *macros) add(n models.Nutrition) {
	m.calories += n.Calories
	m.protein += n.Protein
	m.carbs += n.Carbs
	m.fats += n.Fats
}

type MealStat struct {
	MealType      models.MealType `json:"mealType"`
	Count         int             `json:"count"`
	TotalCalories float64         `json:"totalCalories"`
	TotalProtein  float64         `json:"totalProtein"`
	TotalCarbs    float64         `json:"totalCarbs"`
	TotalFats     float64         `json:"totalFats"`
}

type NutritionStats struct {
	Summary NutritionSummary `json:"summary"`
	ByMeal  []MealStat       `json:"byMeal"`
}

// NutritionStats summarizes the nutrition entries of userID over the last days days
func (e *Engine) NutritionStats(ctx context.Context, userID uuid.UUID, days int) (*NutritionStats, error) {
	stats := &NutritionStats{ByMeal: make([]MealStat, 0)}

	since, ok := e.windowStart(days)
	if !ok {
		return stats, nil
	}
	records, err := e.nutrition.Since(ctx, userID, since)
	if err != nil {
		return nil, storeError("nutrition", err)
	}

	var total macros
	for _, n := range records {
		total.add(n)
	}
	count := len(records)
	stats.Summary = NutritionSummary{
		TotalCalories: total.calories,
		TotalProtein:  total.protein,
		TotalCarbs:    total.carbs,
		TotalFats:     total.fats,
		AvgCalories:   mean(total.calories, count),
		AvgProtein:    mean(total.protein, count),
		AvgCarbs:      mean(total.carbs, count),
		AvgFats:       mean(total.fats, count),
	}

	groups := breakdown(records,
		func(n models.Nutrition) models.MealType { return n.MealType },
		(*macros).add,
	)
	for _, g := range groups {
		stats.ByMeal = append(stats.ByMeal, MealStat{
			MealType:      g.key,
			Count:         g.count,
			TotalCalories: g.acc.calories,
			TotalProtein:  g.acc.protein,
			TotalCarbs:    g.acc.carbs,
			TotalFats:     g.acc.fats,
		})
	}
	return stats, nil
}
