package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/fitlog/backend/internal/clock"
	"github.com/pageza/fitlog/backend/internal/metrics"
	"github.com/pageza/fitlog/backend/internal/models"
	"github.com/pageza/fitlog/backend/internal/repository"
	"github.com/pageza/fitlog/backend/internal/types"
)

type WorkoutService struct {
	repo   *repository.WorkoutRepository
	engine *metrics.Engine
	clock  clock.Clock
}

func NewWorkoutService(repo *repository.WorkoutRepository, engine *metrics.Engine, clk clock.Clock) *WorkoutService {
	return &WorkoutService{repo: repo, engine: engine, clock: clk}
}

func (s *WorkoutService) List(ctx context.Context, userID uuid.UUID, filters *models.RecordFilters) ([]models.Workout, error) {
	return s.repo.List(ctx, userID, filters)
}

func (s *WorkoutService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateWorkoutRequest) (*models.Workout, error) {
	w := &models.Workout{
		UserID:         userID,
		Date:           resolveDate(req.Date, s.clock),
		Type:           req.Type,
		Duration:       req.Duration,
		CaloriesBurned: *req.CaloriesBurned,
		Intensity:      req.Intensity,
		Description:    req.Description,
	}
	if w.Intensity == "" {
		w.Intensity = models.IntensityModerate
	}
	if err := s.repo.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}
	return w, nil
}

func (s *WorkoutService) Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateWorkoutRequest) (*models.Workout, error) {
	fields := map[string]interface{}{}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if req.CaloriesBurned != nil {
		fields["calories_burned"] = *req.CaloriesBurned
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Intensity != nil {
		fields["intensity"] = *req.Intensity
	}
	if req.Date != nil {
		fields["date"] = req.Date.In(s.clock.Location()).UTC()
	}
	return s.repo.Update(ctx, userID, id, fields)
}

func (s *WorkoutService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *WorkoutService) Stats(ctx context.Context, userID uuid.UUID, days int) (*metrics.WorkoutStats, error) {
	return s.engine.WorkoutStats(ctx, userID, days)
}

// resolveDate reads d in the clock's zone, defaulting to now
func resolveDate(d *types.Date, clk clock.Clock) time.Time {
	if d == nil {
		return clk.Now()
	}
	return d.In(clk.Location())
}
