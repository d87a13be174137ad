package types

import "github.com/pageza/fitlog/backend/internal/models"

// FitnessGoalsUpdate holds the goals to change
type FitnessGoalsUpdate struct {
	DailySteps     *int `json:"dailySteps" binding:"omitempty,min=1000,max=50000"`
	DailyCalories  *int `json:"dailyCalories" binding:"omitempty,min=1000,max=5000"`
	DailyWater     *int `json:"dailyWater" binding:"omitempty,min=1,max=20"`
	WeeklyWorkouts *int `json:"weeklyWorkouts" binding:"omitempty,min=1,max=7"`
}

// UpdateProfileRequest represents a request to update a user's profile
type UpdateProfileRequest struct {
	Name          *string               `json:"name" binding:"omitempty,min=2,max=50"`
	Height        *float64              `json:"height" binding:"omitempty,min=100,max=250"`
	Weight        *float64              `json:"weight" binding:"omitempty,min=30,max=300"`
	Age           *int                  `json:"age" binding:"omitempty,min=13,max=120"`
	Gender        *models.Gender        `json:"gender" binding:"omitempty,enum"`
	ActivityLevel *models.ActivityLevel `json:"activityLevel" binding:"omitempty,enum"`
	FitnessGoals  *FitnessGoalsUpdate   `json:"fitnessGoals"`
}

// ChangePasswordRequest represents a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// PictureUploadRequest asks for a presigned profile picture upload
type PictureUploadRequest struct {
	ContentType string `json:"contentType" binding:"required,oneof=image/jpeg image/png image/webp"`
}

// PictureUpload is the presigned upload handed to the client
type PictureUpload struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

// ProfileResponse is a user's profile with a readable picture URL
type ProfileResponse struct {
	*models.User
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
}
