// Package metrics aggregates a user's records over a trailing window of
// days into summary totals and per-category breakdowns.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/fitlog/backend/internal/clock"
	"github.com/pageza/fitlog/backend/internal/models"
	"github.com/pageza/fitlog/backend/internal/repository"
)

// DefaultWindow is used when the caller does not pick a window
const DefaultWindow = 7

// WorkoutSource returns workouts of a user dated at or after since
type WorkoutSource interface {
	Since(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.Workout, error)
}

// NutritionSource returns nutrition entries of a user dated at or after since
type NutritionSource interface {
	Since(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.Nutrition, error)
}

// WaterSource returns water days of a user dated at or after since
type WaterSource interface {
	Since(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.WaterIntake, error)
}

// Engine computes read-only statistics. It never writes.
type Engine struct {
	workouts  WorkoutSource
	nutrition NutritionSource
	water     WaterSource
	clock     clock.Clock
}

func NewEngine(workouts WorkoutSource, nutrition NutritionSource, water WaterSource, clk clock.Clock) *Engine {
	return &Engine{
		workouts:  workouts,
		nutrition: nutrition,
		water:     water,
		clock:     clk,
	}
}

// windowStart is now minus days calendar days. ok is false for an empty window.
func (e *Engine) windowStart(days int) (time.Time, bool) {
	if days <= 0 {
		return time.Time{}, false
	}
	now := e.clock.Now().In(e.clock.Location())
	return now.AddDate(0, 0, -days), true
}

// storeError marks a failed fetch as ErrStoreUnavailable. A cancelled
// request is the caller leaving, not a store failure, and passes through.
func storeError(kind string, err error) error {
	if errors.Is(err, repository.ErrStoreUnavailable) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s stats: %w", kind, err)
	}
	return fmt.Errorf("%s stats: %w: %w", kind, repository.ErrStoreUnavailable, err)
}

func mean(total float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// group is one breakdown bucket
type group[K comparable, A any] struct {
	key   K
	count int
	acc   A
}

// breakdown buckets records by key in one pass and orders the buckets by
// count descending. Equal counts keep first-seen order.
func breakdown[T any, K comparable, A any](records []T, keyOf func(T) K, fold func(*A, T)) []group[K, A] {
	index := make(map[K]int)
	groups := make([]group[K, A], 0)
	for _, r := range records {
		k := keyOf(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group[K, A]{key: k})
		}
		groups[i].count++
		fold(&groups[i].acc, r)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})
	return groups
}
