package types

import "github.com/pageza/fitlog/backend/internal/models"

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateWorkoutRequest represents the request body for logging a workout
type CreateWorkoutRequest struct {
	Type           models.WorkoutType `json:"type" binding:"required,enum"`
	Duration       int                `json:"duration" binding:"required,min=1,max=480"`
	CaloriesBurned *float64           `json:"caloriesBurned" binding:"required,min=0"`
	Description    string             `json:"description" binding:"max=500"`
	Intensity      models.Intensity   `json:"intensity" binding:"omitempty,enum"`
	Date           *Date              `json:"date"`
}

// UpdateWorkoutRequest holds the workout fields to change
type UpdateWorkoutRequest struct {
	Type           *models.WorkoutType `json:"type" binding:"omitempty,enum"`
	Duration       *int                `json:"duration" binding:"omitempty,min=1,max=480"`
	CaloriesBurned *float64            `json:"caloriesBurned" binding:"omitempty,min=0"`
	Description    *string             `json:"description" binding:"omitempty,max=500"`
	Intensity      *models.Intensity   `json:"intensity" binding:"omitempty,enum"`
	Date           *Date               `json:"date"`
}

// CreateNutritionRequest represents the request body for logging a food item
type CreateNutritionRequest struct {
	FoodItem    string          `json:"foodItem" binding:"required,min=1,max=100"`
	Calories    *float64        `json:"calories" binding:"required,min=0"`
	Protein     *float64        `json:"protein" binding:"required,min=0"`
	Carbs       *float64        `json:"carbs" binding:"required,min=0"`
	Fats        *float64        `json:"fats" binding:"required,min=0"`
	MealType    models.MealType `json:"mealType" binding:"required,enum"`
	ServingSize string          `json:"servingSize" binding:"max=50"`
	Date        *Date           `json:"date"`
}

// UpdateNutritionRequest holds the nutrition fields to change
type UpdateNutritionRequest struct {
	FoodItem    *string          `json:"foodItem" binding:"omitempty,min=1,max=100"`
	Calories    *float64         `json:"calories" binding:"omitempty,min=0"`
	Protein     *float64         `json:"protein" binding:"omitempty,min=0"`
	Carbs       *float64         `json:"carbs" binding:"omitempty,min=0"`
	Fats        *float64         `json:"fats" binding:"omitempty,min=0"`
	MealType    *models.MealType `json:"mealType" binding:"omitempty,enum"`
	ServingSize *string          `json:"servingSize" binding:"omitempty,max=50"`
	Date        *Date            `json:"date"`
}

// WaterRequest is the body of a water-day write
type WaterRequest struct {
	Glasses *int     `json:"glasses" binding:"required,min=0,max=50"`
	Amount  *float64 `json:"amount" binding:"required,min=0,max=5000"`
	Date    *Date    `json:"date"`
}

// UpdateWaterRequest holds the water fields to change
type UpdateWaterRequest struct {
	Glasses *int     `json:"glasses" binding:"omitempty,min=0,max=50"`
	Amount  *float64 `json:"amount" binding:"omitempty,min=0,max=5000"`
}

// QuickAddWaterRequest sets today's water from a glass count alone
type QuickAddWaterRequest struct {
	Glasses *int `json:"glasses" binding:"required,min=0,max=20"`
}
