package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/fitlog/backend/internal/clock"
	"github.com/pageza/fitlog/backend/internal/logger"
	"github.com/pageza/fitlog/backend/internal/metrics"
	"github.com/pageza/fitlog/backend/internal/models"
	"github.com/pageza/fitlog/backend/internal/repository"
	"github.com/pageza/fitlog/backend/internal/types"
)

// MLPerGlass converts a quick-add glass count to millilitres
const MLPerGlass = 250

// maxUpsertAttempts bounds insert/update round trips when the day's row
// keeps appearing and vanishing under concurrent writers
const maxUpsertAttempts = 3

// ErrUpsertContention is returned when a water-day write could not settle
var ErrUpsertContention = errors.New("water day write contention")

type WaterService struct {
	repo   *repository.WaterRepository
	engine *metrics.Engine
	clock  clock.Clock
}

func NewWaterService(repo *repository.WaterRepository, engine *metrics.Engine, clk clock.Clock) *WaterService {
	return &WaterService{repo: repo, engine: engine, clock: clk}
}

func (s *WaterService) List(ctx context.Context, userID uuid.UUID, filters *models.RecordFilters) ([]models.WaterIntake, error) {
	return s.repo.List(ctx, userID, filters)
}

// Log sets the water total of one calendar day. created reports whether a
// new record was inserted rather than an existing one overwritten.
func (s *WaterService) Log(ctx context.Context, userID uuid.UUID, req *types.WaterRequest) (*models.WaterIntake, bool, error) {
	return s.upsertDay(ctx, userID, resolveDate(req.Date, s.clock), *req.Glasses, *req.Amount)
}

// QuickAdd sets today's water from a glass count at MLPerGlass each
func (s *WaterService) QuickAdd(ctx context.Context, userID uuid.UUID, glasses int) (*models.WaterIntake, bool, error) {
	return s.upsertDay(ctx, userID, s.clock.Now(), glasses, float64(glasses*MLPerGlass))
}

// upsertDay inserts the day's record and falls back to overwriting it when
// the unique (user, day) index reports it already exists
func (s *WaterService) upsertDay(ctx context.Context, userID uuid.UUID, at time.Time, glasses int, amount float64) (*models.WaterIntake, bool, error) {
	start, end := clock.DayBounds(at, s.clock.Location())

	for attempt := 1; attempt <= maxUpsertAttempts; attempt++ {
		rec := &models.WaterIntake{
			UserID:  userID,
			Date:    start,
			Glasses: glasses,
			Amount:  amount,
		}
		err := s.repo.Create(ctx, rec)
		if err == nil {
			return rec, true, nil
		}
		if !errors.Is(err, repository.ErrDuplicateKey) {
			return nil, false, fmt.Errorf("failed to create water intake: %w", err)
		}

		updated, err := s.repo.UpdateDay(ctx, userID, start, end, glasses, amount)
		if err == nil {
			return updated, false, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, false, fmt.Errorf("failed to update water intake: %w", err)
		}
		logger.L().Debug("water day vanished between insert and update, retrying",
			zap.String("user_id", userID.String()),
			zap.Int("attempt", attempt))
	}
	return nil, false, ErrUpsertContention
}

// Today returns the record for the current day, or nil when none exists
func (s *WaterService) Today(ctx context.Context, userID uuid.UUID) (*models.WaterIntake, error) {
	start, end := clock.DayBounds(s.clock.Now(), s.clock.Location())
	rec, err := s.repo.FindDay(ctx, userID, start, end)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return rec, err
}

func (s *WaterService) Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateWaterRequest) (*models.WaterIntake, error) {
	fields := map[string]interface{}{}
	if req.Glasses != nil {
		fields["glasses"] = *req.Glasses
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	return s.repo.Update(ctx, userID, id, fields)
}

func (s *WaterService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *WaterService) Stats(ctx context.Context, userID uuid.UUID, days int) (*metrics.WaterStats, error) {
	return s.engine.WaterStats(ctx, userID, days)
}
