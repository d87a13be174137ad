package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FitnessGoals are the user's daily and weekly targets
type FitnessGoals struct {
	DailySteps     int `gorm:"not null;default:10000" json:"dailySteps"`
	DailyCalories  int `gorm:"not null;default:2000" json:"dailyCalories"`
	DailyWater     int `gorm:"not null;default:8" json:"dailyWater"`
	WeeklyWorkouts int `gorm:"not null;default:3" json:"weeklyWorkouts"`
}

// DefaultFitnessGoals are assigned at registration
func DefaultFitnessGoals() FitnessGoals {
	return FitnessGoals{
		DailySteps:     10000,
		DailyCalories:  2000,
		DailyWater:     8,
		WeeklyWorkouts: 3,
	}
}

// User is an account together with its biometric profile
type User struct {
	ID                uuid.UUID     `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
	Name              string        `gorm:"size:50;not null" json:"name"`
	Email             string        `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash      string        `gorm:"not null" json:"-"`
	ProfilePictureKey string        `gorm:"size:255" json:"-"`
	Height            *float64      `json:"height,omitempty"`
	Weight            *float64      `json:"weight,omitempty"`
	Age               *int          `json:"age,omitempty"`
	Gender            Gender        `gorm:"size:16;not null;default:'other'" json:"gender"`
	ActivityLevel     ActivityLevel `gorm:"size:32;not null;default:'moderately_active'" json:"activityLevel"`
	FitnessGoals      FitnessGoals  `gorm:"embedded;embeddedPrefix:goal_" json:"fitnessGoals"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an id when the caller did not
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
