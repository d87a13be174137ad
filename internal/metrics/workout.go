package metrics

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/fitlog/backend/internal/models"
)

type WorkoutSummary struct {
	TotalWorkouts int     `json:"totalWorkouts"`
	TotalDuration int     `json:"totalDuration"`
	TotalCalories float64 `json:"totalCalories"`
	AvgDuration   float64 `json:"avgDuration"`
	AvgCalories   float64 `json:"avgCalories"`
}

type WorkoutTypeStat struct {
	Type          models.WorkoutType `json:"type"`
	Count         int                `json:"count"`
	TotalCalories float64            `json:"totalCalories"`
}

type WorkoutStats struct {
	Summary WorkoutSummary    `json:"summary"`
	ByType  []WorkoutTypeStat `json:"byType"`
}

// WorkoutStats summarizes the workouts of userID over the last days days
func (e *Engine) WorkoutStats(ctx context.Context, userID uuid.UUID, days int) (*WorkoutStats, error) {
	stats := &WorkoutStats{ByType: make([]WorkoutTypeStat, 0)}

	since, ok := e.windowStart(days)
	if !ok {
		return stats, nil
	}
	records, err := e.workouts.Since(ctx, userID, since)
	if err != nil {
		return nil, storeError("workout", err)
	}

	s := &stats.Summary
	for _, w := range records {
		s.TotalWorkouts++
		s.TotalDuration += w.Duration
		s.TotalCalories += w.CaloriesBurned
	}
	s.AvgDuration = mean(float64(s.TotalDuration), s.TotalWorkouts)
	s.AvgCalories = mean(s.TotalCalories, s.TotalWorkouts)

	groups := breakdown(records,
		func(w models.Workout) models.WorkoutType { return w.Type },
		func(cal *float64, w models.Workout) { *cal += w.CaloriesBurned },
	)
	for _, g := range groups {
		stats.ByType = append(stats.ByType, WorkoutTypeStat{
			Type:          g.key,
			Count:         g.count,
			TotalCalories: g.acc,
		})
	}
	return stats, nil
}
