package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fitlog/backend/internal/metrics"
	"github.com/pageza/fitlog/backend/internal/models"
	"github.com/pageza/fitlog/backend/internal/types"
)

// parsePeriod reads the stats window in days. Absent means the default;
// zero and negative values are passed through and yield empty stats.
func parsePeriod(c *gin.Context) (int, error) {
	raw := strings.TrimSpace(c.Query("period"))
	if raw == "" {
		return metrics.DefaultWindow, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, types.NewValidationError("period", "must be a whole number of days")
	}
	return days, nil
}

// parseFilters reads startDate, endDate, type, mealType, search and limit.
// A bare endDate day includes that whole day.
func parseFilters(c *gin.Context, loc *time.Location) (*models.RecordFilters, error) {
	var (
		filters models.RecordFilters
		errs    types.ValidationErrors
	)

	if raw := c.Query("startDate"); raw != "" {
		d, err := types.ParseDate(raw)
		if err != nil {
			errs = append(errs, types.ValidationError{Field: "startDate", Message: err.Error()})
		} else {
			start := d.In(loc)
			filters.StartDate = &start
		}
	}
	if raw := c.Query("endDate"); raw != "" {
		d, err := types.ParseDate(raw)
		if err != nil {
			errs = append(errs, types.ValidationError{Field: "endDate", Message: err.Error()})
		} else {
			end := d.In(loc)
			if d.DayOnly {
				end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
			}
			filters.EndDate = &end
		}
	}
	if raw := c.Query("type"); raw != "" {
		t, err := models.ParseWorkoutType(raw)
		if err != nil {
			errs = append(errs, types.ValidationError{Field: "type", Message: err.Error()})
		}
		filters.WorkoutType = t
	}
	if raw := c.Query("mealType"); raw != "" {
		m, err := models.ParseMealType(raw)
		if err != nil {
			errs = append(errs, types.ValidationError{Field: "mealType", Message: err.Error()})
		}
		filters.MealType = m
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs = append(errs, types.ValidationError{Field: "limit", Message: "must be a positive integer"})
		}
		filters.Limit = n
	}
	filters.Search = c.Query("search")

	if len(errs) > 0 {
		return nil, errs
	}
	return &filters, nil
}
