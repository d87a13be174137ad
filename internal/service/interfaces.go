package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/fitlog/backend/internal/metrics"
	"github.com/pageza/fitlog/backend/internal/models"
	"github.com/pageza/fitlog/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// IWorkoutService defines the interface for workout operations
type IWorkoutService interface {
	List(ctx context.Context, userID uuid.UUID, filters *models.RecordFilters) ([]models.Workout, error)
	Create(ctx context.Context, userID uuid.UUID, req *types.CreateWorkoutRequest) (*models.Workout, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateWorkoutRequest) (*models.Workout, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID, days int) (*metrics.WorkoutStats, error)
}

// INutritionService defines the interface for nutrition operations
type INutritionService interface {
	List(ctx context.Context, userID uuid.UUID, filters *models.RecordFilters) ([]models.Nutrition, error)
	Create(ctx context.Context, userID uuid.UUID, req *types.CreateNutritionRequest) (*models.Nutrition, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateNutritionRequest) (*models.Nutrition, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID, days int) (*metrics.NutritionStats, error)
}

// IWaterService defines the interface for water-day operations
type IWaterService interface {
	List(ctx context.Context, userID uuid.UUID, filters *models.RecordFilters) ([]models.WaterIntake, error)
	Log(ctx context.Context, userID uuid.UUID, req *types.WaterRequest) (*models.WaterIntake, bool, error)
	QuickAdd(ctx context.Context, userID uuid.UUID, glasses int) (*models.WaterIntake, bool, error)
	Today(ctx context.Context, userID uuid.UUID) (*models.WaterIntake, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateWaterRequest) (*models.WaterIntake, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID, days int) (*metrics.WaterStats, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*types.ProfileResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *types.ChangePasswordRequest) error
	Stats(ctx context.Context, userID uuid.UUID) (*ProfileStats, error)
	RequestPictureUpload(ctx context.Context, userID uuid.UUID, contentType string) (*types.PictureUpload, error)
}
