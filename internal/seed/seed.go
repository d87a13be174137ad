// Package seed recreates the sample accounts used for demos and local development.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/fitlog/backend/internal/clock"
	"github.com/pageza/fitlog/backend/internal/logger"
	"github.com/pageza/fitlog/backend/internal/models"
)

// Password is shared by every sample account
const Password = "password123"

type sampleUser struct {
	name          string
	email         string
	height        float64
	weight        float64
	age           int
	gender        models.Gender
	activityLevel models.ActivityLevel
	goals         models.FitnessGoals
}

var sampleUsers = []sampleUser{
	{
		name: "John Doe", email: "john@example.com",
		height: 175, weight: 70, age: 28,
		gender: models.GenderMale, activityLevel: models.ActivityModeratelyActive,
		goals: models.FitnessGoals{DailySteps: 10000, DailyCalories: 2200, DailyWater: 8, WeeklyWorkouts: 4},
	},
	{
		name: "Jane Smith", email: "jane@example.com",
		height: 165, weight: 60, age: 25,
		gender: models.GenderFemale, activityLevel: models.ActivityLightlyActive,
		goals: models.FitnessGoals{DailySteps: 8000, DailyCalories: 1800, DailyWater: 6, WeeklyWorkouts: 3},
	},
}

// daysAgo offsets each sample record from now
type sampleWorkout struct {
	daysAgo int
	models.Workout
}

var sampleWorkouts = []sampleWorkout{
	{1, models.Workout{Type: models.WorkoutRunning, Duration: 30, CaloriesBurned: 300, Description: "Morning run in the park", Intensity: models.IntensityHigh}},
	{2, models.Workout{Type: models.WorkoutStrengthTraining, Duration: 45, CaloriesBurned: 250, Description: "Upper body workout", Intensity: models.IntensityModerate}},
	{3, models.Workout{Type: models.WorkoutYoga, Duration: 60, CaloriesBurned: 150, Description: "Evening yoga session", Intensity: models.IntensityLow}},
	{4, models.Workout{Type: models.WorkoutCycling, Duration: 40, CaloriesBurned: 280, Description: "Bike ride around the city", Intensity: models.IntensityModerate}},
	{5, models.Workout{Type: models.WorkoutHIIT, Duration: 25, CaloriesBurned: 320, Description: "High-intensity interval training", Intensity: models.IntensityHigh}},
}

type sampleMeal struct {
	daysAgo int
	models.Nutrition
}

var sampleMeals = []sampleMeal{
	{1, models.Nutrition{FoodItem: "Oatmeal with berries", Calories: 250, Protein: 8, Carbs: 45, Fats: 5, MealType: models.MealBreakfast, ServingSize: "1 cup"}},
	{1, models.Nutrition{FoodItem: "Grilled chicken salad", Calories: 350, Protein: 35, Carbs: 15, Fats: 12, MealType: models.MealLunch, ServingSize: "1 large bowl"}},
	{1, models.Nutrition{FoodItem: "Salmon with vegetables", Calories: 400, Protein: 30, Carbs: 20, Fats: 18, MealType: models.MealDinner, ServingSize: "1 fillet"}},
	{1, models.Nutrition{FoodItem: "Greek yogurt", Calories: 120, Protein: 15, Carbs: 8, Fats: 2, MealType: models.MealSnack, ServingSize: "1 cup"}},
	{2, models.Nutrition{FoodItem: "Banana", Calories: 105, Protein: 1, Carbs: 27, Fats: 0, MealType: models.MealSnack, ServingSize: "1 medium"}},
}

var sampleWater = []struct {
	daysAgo int
	glasses int
}{
	{1, 8}, {2, 6}, {3, 7}, {4, 9}, {5, 5},
}

// mlPerGlass matches the quick-add conversion
const mlPerGlass = 250

// Result counts what Run created
type Result struct {
	Users     int
	Workouts  int
	Meals     int
	WaterDays int
}

// Run deletes the sample accounts with all their records and creates them again.
// Record dates are relative to now; water days start at midnight in loc.
func Run(ctx context.Context, db *gorm.DB, now time.Time, loc *time.Location) (*Result, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash sample password: %w", err)
	}

	var res Result
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, su := range sampleUsers {
			if err := purge(tx, su.email); err != nil {
				return err
			}

			height, weight, age := su.height, su.weight, su.age
			user := &models.User{
				Name:          su.name,
				Email:         su.email,
				PasswordHash:  string(hash),
				Height:        &height,
				Weight:        &weight,
				Age:           &age,
				Gender:        su.gender,
				ActivityLevel: su.activityLevel,
				FitnessGoals:  su.goals,
			}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("create user %s: %w", su.email, err)
			}
			res.Users++
			logger.L().Info("Created sample user", zap.String("email", su.email), zap.String("id", user.ID.String()))

			for _, sw := range sampleWorkouts {
				w := sw.Workout
				w.UserID = user.ID
				w.Date = now.AddDate(0, 0, -sw.daysAgo)
				if err := tx.Create(&w).Error; err != nil {
					return fmt.Errorf("create workout: %w", err)
				}
				res.Workouts++
			}
			for _, sm := range sampleMeals {
				n := sm.Nutrition
				n.UserID = user.ID
				n.Date = now.AddDate(0, 0, -sm.daysAgo)
				if err := tx.Create(&n).Error; err != nil {
					return fmt.Errorf("create meal: %w", err)
				}
				res.Meals++
			}
			for _, sd := range sampleWater {
				day := &models.WaterIntake{
					UserID:  user.ID,
					Date:    clock.StartOfDay(now.AddDate(0, 0, -sd.daysAgo), loc),
					Glasses: sd.glasses,
					Amount:  float64(sd.glasses * mlPerGlass),
				}
				if err := tx.Create(day).Error; err != nil {
					return fmt.Errorf("create water day: %w", err)
				}
				res.WaterDays++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func purge(tx *gorm.DB, email string) error {
	var user models.User
	err := tx.Where("email = ?", email).Limit(1).Find(&user).Error
	if err != nil {
		return fmt.Errorf("find user %s: %w", email, err)
	}
	if user.ID == uuid.Nil {
		return nil
	}

	for _, m := range []interface{}{&models.Workout{}, &models.Nutrition{}, &models.WaterIntake{}} {
		if err := tx.Where("user_id = ?", user.ID).Delete(m).Error; err != nil {
			return fmt.Errorf("clear records of %s: %w", email, err)
		}
	}
	if err := tx.Delete(&user).Error; err != nil {
		return fmt.Errorf("delete user %s: %w", email, err)
	}
	logger.L().Info("Removed existing sample user", zap.String("email", email))
	return nil
}
