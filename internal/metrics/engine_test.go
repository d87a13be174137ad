package metrics

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fitlog/backend/internal/clock"
	"github.com/pageza/fitlog/backend/internal/models"
	"github.com/pageza/fitlog/backend/internal/repository"
)

type mockWorkouts struct{ mock.Mock }

func (m *mockWorkouts) Since(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.Workout, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Workout), args.Error(1)
}

type mockNutrition struct{ mock.Mock }

func (m *mockNutrition) Since(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.Nutrition, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Nutrition), args.Error(1)
}

type mockWater struct{ mock.Mock }

func (m *mockWater) Since(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.WaterIntake, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WaterIntake), args.Error(1)
}

var now = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func newTestEngine() (*Engine, *mockWorkouts, *mockNutrition, *mockWater) {
	w, n, wt := &mockWorkouts{}, &mockNutrition{}, &mockWater{}
	return NewEngine(w, n, wt, clock.Fixed{T: now}), w, n, wt
}

func TestWindowStart(t *testing.T) {
	e, _, _, _ := newTestEngine()

	start, ok := e.windowStart(7)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 8, 14, 30, 0, 0, time.UTC), start)

	_, ok = e.windowStart(0)
	assert.False(t, ok)
	_, ok = e.windowStart(-3)
	assert.False(t, ok)
}

func TestEmptyWindowSkipsStore(t *testing.T) {
	e, w, n, wt := newTestEngine()
	ctx := context.Background()
	user := uuid.New()

	for _, days := range []int{0, -1, -90} {
		ws, err := e.WorkoutStats(ctx, user, days)
		require.NoError(t, err)
		assert.Equal(t, WorkoutSummary{}, ws.Summary)
		assert.NotNil(t, ws.ByType)
		assert.Empty(t, ws.ByType)

		ns, err := e.NutritionStats(ctx, user, days)
		require.NoError(t, err)
		assert.Equal(t, NutritionSummary{}, ns.Summary)
		assert.NotNil(t, ns.ByMeal)

		wts, err := e.WaterStats(ctx, user, days)
		require.NoError(t, err)
		assert.Equal(t, WaterSummary{}, wts.Summary)
		assert.NotNil(t, wts.DailyIntake)
	}

	w.AssertNotCalled(t, "Since", mock.Anything, mock.Anything, mock.Anything)
	n.AssertNotCalled(t, "Since", mock.Anything, mock.Anything, mock.Anything)
	wt.AssertNotCalled(t, "Since", mock.Anything, mock.Anything, mock.Anything)
}

func TestNoRecordsYieldsZeros(t *testing.T) {
	e, w, _, _ := newTestEngine()
	user := uuid.New()
	w.On("Since", mock.Anything, user, mock.Anything).Return([]models.Workout{}, nil)

	stats, err := e.WorkoutStats(context.Background(), user, 7)
	require.NoError(t, err)
	assert.Equal(t, WorkoutSummary{}, stats.Summary)
	assert.Empty(t, stats.ByType)
}

func TestWorkoutStats(t *testing.T) {
	e, w, _, _ := newTestEngine()
	user := uuid.New()
	since := now.AddDate(0, 0, -7)

	records := []models.Workout{
		{Type: models.WorkoutYoga, Duration: 60, CaloriesBurned: 200},
		{Type: models.WorkoutRunning, Duration: 30, CaloriesBurned: 300},
		{Type: models.WorkoutCycling, Duration: 45, CaloriesBurned: 400},
		{Type: models.WorkoutRunning, Duration: 25, CaloriesBurned: 250},
		{Type: models.WorkoutCycling, Duration: 40, CaloriesBurned: 350},
	}
	w.On("Since", mock.Anything, user, since).Return(records, nil)

	stats, err := e.WorkoutStats(context.Background(), user, 7)
	require.NoError(t, err)

	assert.Equal(t, WorkoutSummary{
		TotalWorkouts: 5,
		TotalDuration: 200,
		TotalCalories: 1500,
		AvgDuration:   40,
		AvgCalories:   300,
	}, stats.Summary)

	// running and cycling tie at 2; running was seen first
	assert.Equal(t, []WorkoutTypeStat{
		{Type: models.WorkoutRunning, Count: 2, TotalCalories: 550},
		{Type: models.WorkoutCycling, Count: 2, TotalCalories: 750},
		{Type: models.WorkoutYoga, Count: 1, TotalCalories: 200},
	}, stats.ByType)
	w.AssertExpectations(t)
}

func TestNutritionStats(t *testing.T) {
	e, _, n, _ := newTestEngine()
	user := uuid.New()

	records := []models.Nutrition{
		{MealType: models.MealBreakfast, Calories: 350, Protein: 12, Carbs: 60, Fats: 8},
		{MealType: models.MealLunch, Calories: 450, Protein: 35, Carbs: 20, Fats: 25},
		{MealType: models.MealLunch, Calories: 550, Protein: 25, Carbs: 70, Fats: 15},
		{MealType: models.MealSnack, Calories: 150, Protein: 20, Carbs: 15, Fats: 0},
	}
	n.On("Since", mock.Anything, user, mock.Anything).Return(records, nil)

	stats, err := e.NutritionStats(context.Background(), user, 30)
	require.NoError(t, err)

	assert.Equal(t, NutritionSummary{
		TotalCalories: 1500, TotalProtein: 92, TotalCarbs: 165, TotalFats: 48,
		AvgCalories: 375, AvgProtein: 23, AvgCarbs: 41.25, AvgFats: 12,
	}, stats.Summary)

	require.Len(t, stats.ByMeal, 3)
	assert.Equal(t, MealStat{
		MealType: models.MealLunch, Count: 2,
		TotalCalories: 1000, TotalProtein: 60, TotalCarbs: 90, TotalFats: 40,
	}, stats.ByMeal[0])
	assert.Equal(t, models.MealBreakfast, stats.ByMeal[1].MealType)
	assert.Equal(t, models.MealSnack, stats.ByMeal[2].MealType)
}

func TestWaterStats(t *testing.T) {
	e, _, _, wt := newTestEngine()
	user := uuid.New()

	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	records := []models.WaterIntake{
		{Date: day(14), Glasses: 6, Amount: 1500},
		{Date: day(12), Glasses: 8, Amount: 2000},
		{Date: day(13), Glasses: 7, Amount: 1750},
	}
	wt.On("Since", mock.Anything, user, mock.Anything).Return(records, nil)

	stats, err := e.WaterStats(context.Background(), user, 7)
	require.NoError(t, err)

	assert.Equal(t, WaterSummary{
		TotalGlasses: 21, TotalAmount: 5250, AvgGlasses: 7, AvgAmount: 1750, DaysTracked: 3,
	}, stats.Summary)
	require.Len(t, stats.DailyIntake, 3)
	assert.Equal(t, day(12), stats.DailyIntake[0].Date)
	assert.Equal(t, day(13), stats.DailyIntake[1].Date)
	assert.Equal(t, day(14), stats.DailyIntake[2].Date)
}

func TestStoreFailureIsStoreUnavailable(t *testing.T) {
	e, w, n, wt := newTestEngine()
	user := uuid.New()
	boom := errors.New("connection refused")
	w.On("Since", mock.Anything, user, mock.Anything).Return(nil, boom)
	n.On("Since", mock.Anything, user, mock.Anything).Return(nil, repository.ErrStoreUnavailable)
	wt.On("Since", mock.Anything, user, mock.Anything).Return(nil, context.DeadlineExceeded)

	_, err := e.WorkoutStats(context.Background(), user, 7)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
	assert.ErrorIs(t, err, boom)

	_, err = e.NutritionStats(context.Background(), user, 7)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	_, err = e.WaterStats(context.Background(), user, 7)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
}

func TestCancelledRequestIsNotStoreUnavailable(t *testing.T) {
	e, w, _, _ := newTestEngine()
	user := uuid.New()
	w.On("Since", mock.Anything, user, mock.Anything).Return(nil, context.Canceled)

	_, err := e.WorkoutStats(context.Background(), user, 7)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, repository.ErrStoreUnavailable)
}

func TestAveragesMatchTotals(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	types := models.WorkoutTypes

	for round := 0; round < 50; round++ {
		e, w, _, _ := newTestEngine()
		user := uuid.New()

		records := make([]models.Workout, rng.Intn(20))
		for i := range records {
			records[i] = models.Workout{
				Type:           types[rng.Intn(len(types))],
				Duration:       1 + rng.Intn(480),
				CaloriesBurned: float64(rng.Intn(2000)),
			}
		}
		w.On("Since", mock.Anything, user, mock.Anything).Return(records, nil)

		stats, err := e.WorkoutStats(context.Background(), user, 1+rng.Intn(90))
		require.NoError(t, err)

		s := stats.Summary
		if s.TotalWorkouts == 0 {
			assert.Zero(t, s.AvgDuration)
			assert.Zero(t, s.AvgCalories)
			continue
		}
		assert.Equal(t, float64(s.TotalDuration)/float64(s.TotalWorkouts), s.AvgDuration)
		assert.Equal(t, s.TotalCalories/float64(s.TotalWorkouts), s.AvgCalories)

		counted := 0
		for i, g := range stats.ByType {
			counted += g.Count
			if i > 0 {
				assert.GreaterOrEqual(t, stats.ByType[i-1].Count, g.Count)
			}
		}
		assert.Equal(t, s.TotalWorkouts, counted)
	}
}

func TestBreakdownIsStable(t *testing.T) {
	keys := []string{"c", "a", "b", "a", "c", "b"}
	groups := breakdown(keys,
		func(s string) string { return s },
		func(n *int, _ string) { *n++ },
	)
	require.Len(t, groups, 3)
	assert.Equal(t, "c", groups[0].key)
	assert.Equal(t, "a", groups[1].key)
	assert.Equal(t, "b", groups[2].key)
}

func TestNutritionBreakdownMatchesSummary(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	meals := []models.MealType{models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack}

	for round := 0; round < 50; round++ {
		e, _, n, _ := newTestEngine()
		user := uuid.New()

		records := make([]models.Nutrition, rng.Intn(20))
		for i := range records {
			records[i] = models.Nutrition{
				MealType: meals[rng.Intn(len(meals))],
				Calories: float64(rng.Intn(1500)),
				Protein:  float64(rng.Intn(100)),
				Carbs:    float64(rng.Intn(200)),
				Fats:     float64(rng.Intn(80)),
			}
		}
		n.On("Since", mock.Anything, user, mock.Anything).Return(records, nil)

		stats, err := e.NutritionStats(context.Background(), user, 1+rng.Intn(90))
		require.NoError(t, err)

		s := stats.Summary
		count := len(records)
		if count == 0 {
			assert.Equal(t, NutritionSummary{}, s)
			assert.Empty(t, stats.ByMeal)
			continue
		}
		assert.Equal(t, s.TotalCalories/float64(count), s.AvgCalories)
		assert.Equal(t, s.TotalProtein/float64(count), s.AvgProtein)
		assert.Equal(t, s.TotalCarbs/float64(count), s.AvgCarbs)
		assert.Equal(t, s.TotalFats/float64(count), s.AvgFats)

		counted := 0
		var calories float64
		for i, g := range stats.ByMeal {
			counted += g.Count
			calories += g.TotalCalories
			if i > 0 {
				assert.GreaterOrEqual(t, stats.ByMeal[i-1].Count, g.Count)
			}
		}
		assert.Equal(t, count, counted)
		assert.Equal(t, s.TotalCalories, calories)
	}
}

func TestWaterDaysMatchSummary(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for round := 0; round < 50; round++ {
		e, _, _, wt := newTestEngine()
		user := uuid.New()

		offsets := rng.Perm(30)[:rng.Intn(15)]
		records := make([]models.WaterIntake, len(offsets))
		for i, off := range offsets {
			glasses := rng.Intn(51)
			records[i] = models.WaterIntake{
				Date:    clock.StartOfDay(now, time.UTC).AddDate(0, 0, -off),
				Glasses: glasses,
				Amount:  float64(glasses * 250),
			}
		}
		wt.On("Since", mock.Anything, user, mock.Anything).Return(records, nil)

		stats, err := e.WaterStats(context.Background(), user, 1+rng.Intn(90))
		require.NoError(t, err)

		s := stats.Summary
		assert.Equal(t, len(records), s.DaysTracked)
		require.Len(t, stats.DailyIntake, s.DaysTracked)
		if s.DaysTracked == 0 {
			assert.Equal(t, WaterSummary{}, s)
			continue
		}
		assert.Equal(t, float64(s.TotalGlasses)/float64(s.DaysTracked), s.AvgGlasses)
		assert.Equal(t, s.TotalAmount/float64(s.DaysTracked), s.AvgAmount)

		glasses := 0
		for i, d := range stats.DailyIntake {
			glasses += d.Glasses
			if i > 0 {
				assert.True(t, stats.DailyIntake[i-1].Date.Before(d.Date))
			}
		}
		assert.Equal(t, s.TotalGlasses, glasses)
	}
}
