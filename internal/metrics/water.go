package metrics

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type WaterSummary struct {
	TotalGlasses int     `json:"totalGlasses"`
	TotalAmount  float64 `json:"totalAmount"`
	AvgGlasses   float64 `json:"avgGlasses"`
	AvgAmount    float64 `json:"avgAmount"`
	DaysTracked  int     `json:"daysTracked"`
}

type WaterDay struct {
	Date    time.Time `json:"date"`
	Glasses int       `json:"glasses"`
	Amount  float64   `json:"amount"`
}

type WaterStats struct {
	Summary     WaterSummary `json:"summary"`
	DailyIntake []WaterDay   `json:"dailyIntake"`
}

// WaterStats summarizes the water days of userID over the last days days.
// DailyIntake is in chronological order.
func (e *Engine) WaterStats(ctx context.Context, userID uuid.UUID, days int) (*WaterStats, error) {
	stats := &WaterStats{DailyIntake: make([]WaterDay, 0)}

	since, ok := e.windowStart(days)
	if !ok {
		return stats, nil
	}
	records, err := e.water.Since(ctx, userID, since)
	if err != nil {
		return nil, storeError("water", err)
	}

	s := &stats.Summary
	loc := e.clock.Location()
	for _, w := range records {
		s.TotalGlasses += w.Glasses
		s.TotalAmount += w.Amount
		stats.DailyIntake = append(stats.DailyIntake, WaterDay{
			Date:    w.Date.In(loc),
			Glasses: w.Glasses,
			Amount:  w.Amount,
		})
	}
	s.DaysTracked = len(records)
	s.AvgGlasses = mean(float64(s.TotalGlasses), s.DaysTracked)
	s.AvgAmount = mean(s.TotalAmount, s.DaysTracked)

	sort.SliceStable(stats.DailyIntake, func(i, j int) bool {
		return stats.DailyIntake[i].Date.Before(stats.DailyIntake[j].Date)
	})
	return stats, nil
}
