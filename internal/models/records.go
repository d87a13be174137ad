package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record dates are stored in UTC so range comparisons agree across drivers.

// Workout is one logged training session
type Workout struct {
	ID             uuid.UUID   `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID   `gorm:"type:varchar(36);not null;index:idx_workouts_user_date,priority:1" json:"userId"`
	Date           time.Time   `gorm:"not null;index:idx_workouts_user_date,priority:2" json:"date"`
	Type           WorkoutType `gorm:"size:32;not null" json:"type"`
	Duration       int         `gorm:"not null;check:duration >= 1 AND duration <= 480" json:"duration"`
	CaloriesBurned float64     `gorm:"not null;check:calories_burned >= 0" json:"caloriesBurned"`
	Intensity      Intensity   `gorm:"size:16;not null;default:'moderate'" json:"intensity"`
	Description    string      `gorm:"size:500" json:"description,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func (Workout) TableName() string { return "workouts" }

func (w *Workout) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	w.Date = w.Date.UTC()
	return nil
}

// Nutrition is one logged food item
type Nutrition struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID `gorm:"type:varchar(36);not null;index:idx_nutrition_user_date,priority:1" json:"userId"`
	Date        time.Time `gorm:"not null;index:idx_nutrition_user_date,priority:2" json:"date"`
	FoodItem    string    `gorm:"size:100;not null" json:"foodItem"`
	Calories    float64   `gorm:"not null;check:calories >= 0" json:"calories"`
	Protein     float64   `gorm:"not null;check:protein >= 0" json:"protein"`
	Carbs       float64   `gorm:"not null;check:carbs >= 0" json:"carbs"`
	Fats        float64   `gorm:"not null;check:fats >= 0" json:"fats"`
	MealType    MealType  `gorm:"size:16;not null" json:"mealType"`
	ServingSize string    `gorm:"size:50" json:"servingSize,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Nutrition) TableName() string { return "nutrition" }

func (n *Nutrition) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	n.Date = n.Date.UTC()
	return nil
}

// WaterIntake is the single per-day water total of a user.
// Date is always the start of the calendar day; (user_id, date) is unique.
type WaterIntake struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_water_user_day,priority:1" json:"userId"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_water_user_day,priority:2" json:"date"`
	Glasses   int       `gorm:"not null;check:glasses >= 0 AND glasses <= 50" json:"glasses"`
	Amount    float64   `gorm:"not null;check:amount >= 0 AND amount <= 5000" json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (WaterIntake) TableName() string { return "water_intake" }

func (w *WaterIntake) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	w.Date = w.Date.UTC()
	return nil
}

// RecordFilters narrows a listing of one user's records
type RecordFilters struct {
	StartDate   *time.Time
	EndDate     *time.Time
	WorkoutType WorkoutType
	MealType    MealType
	Search      string
	Limit       int
}

// DefaultListLimit caps record listings
const DefaultListLimit = 100

// All returns every model managed by migrations
func All() []interface{} {
	return []interface{}{&User{}, &Workout{}, &Nutrition{}, &WaterIntake{}}
}
