package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/fitlog/backend/internal/health"
	"github.com/pageza/fitlog/backend/internal/logger"
	"github.com/pageza/fitlog/backend/internal/models"
	"github.com/pageza/fitlog/backend/internal/repository"
	"github.com/pageza/fitlog/backend/internal/types"
)

const (
	pictureUploadTTL   = 15 * time.Minute
	pictureDownloadTTL = time.Hour
)

// ErrStorageDisabled is returned for picture operations without object storage
var ErrStorageDisabled = errors.New("profile picture storage is not configured")

// PictureStorage presigns object URLs for profile pictures
type PictureStorage interface {
	PresignUpload(ctx context.Context, objectKey, contentType string, expiration time.Duration) (string, error)
	PresignDownload(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}

// ProfileStats are the derived health metrics plus the user's goals
type ProfileStats struct {
	health.Metrics
	FitnessGoals models.FitnessGoals `json:"fitnessGoals"`
}

type ProfileService struct {
	users   *repository.UserRepository
	storage PictureStorage
}

// NewProfileService creates a profile service. storage may be nil.
func NewProfileService(users *repository.UserRepository, storage PictureStorage) *ProfileService {
	return &ProfileService{users: users, storage: storage}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, user), nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*types.ProfileResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Height != nil {
		fields["height"] = *req.Height
	}
	if req.Weight != nil {
		fields["weight"] = *req.Weight
	}
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.ActivityLevel != nil {
		fields["activity_level"] = *req.ActivityLevel
	}
	if g := req.FitnessGoals; g != nil {
		if g.DailySteps != nil {
			fields["goal_daily_steps"] = *g.DailySteps
		}
		if g.DailyCalories != nil {
			fields["goal_daily_calories"] = *g.DailyCalories
		}
		if g.DailyWater != nil {
			fields["goal_daily_water"] = *g.DailyWater
		}
		if g.WeeklyWorkouts != nil {
			fields["goal_weekly_workouts"] = *g.WeeklyWorkouts
		}
	}

	user, err := s.users.Update(ctx, userID, fields)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, user), nil
}

// ChangePassword replaces the password after checking the current one
func (s *ProfileService) ChangePassword(ctx context.Context, userID uuid.UUID, req *types.ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !checkPassword(user.PasswordHash, req.CurrentPassword) {
		return types.NewValidationError("currentPassword", "current password is incorrect")
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	_, err = s.users.Update(ctx, userID, map[string]interface{}{"password_hash": hash})
	return err
}

// Stats derives BMI, BMR and TDEE from the stored biometrics
func (s *ProfileService) Stats(ctx context.Context, userID uuid.UUID) (*ProfileStats, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ProfileStats{
		Metrics:      health.Derive(health.ProfileOf(user)),
		FitnessGoals: user.FitnessGoals,
	}, nil
}

// RequestPictureUpload presigns a PUT for a new picture and points the
// profile at it
func (s *ProfileService) RequestPictureUpload(ctx context.Context, userID uuid.UUID, contentType string) (*types.PictureUpload, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}

	key := fmt.Sprintf("profile-pictures/%s/%s%s", userID, uuid.NewString(), pictureExt(contentType))
	url, err := s.storage.PresignUpload(ctx, key, contentType, pictureUploadTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}
	if _, err := s.users.Update(ctx, userID, map[string]interface{}{"profile_picture_key": key}); err != nil {
		return nil, err
	}

	return &types.PictureUpload{
		UploadURL: url,
		Key:       key,
		ExpiresIn: int(pictureUploadTTL.Seconds()),
	}, nil
}

func (s *ProfileService) toResponse(ctx context.Context, user *models.User) *types.ProfileResponse {
	resp := &types.ProfileResponse{User: user}
	if s.storage == nil || user.ProfilePictureKey == "" {
		return resp
	}
	url, err := s.storage.PresignDownload(ctx, user.ProfilePictureKey, pictureDownloadTTL)
	if err != nil {
		logger.L().Warn("failed to presign profile picture",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
		return resp
	}
	resp.ProfilePictureURL = url
	return resp
}

func pictureExt(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
