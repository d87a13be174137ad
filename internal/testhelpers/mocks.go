package testhelpers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/fitlog/backend/internal/metrics"
	"github.com/pageza/fitlog/backend/internal/models"
	"github.com/pageza/fitlog/backend/internal/service"
	"github.com/pageza/fitlog/backend/internal/types"
)

// MockAuthService is a mock implementation of service.IAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) GenerateToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

func (m *MockAuthService) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockWaterService is a mock implementation of service.IWaterService
type MockWaterService struct {
	mock.Mock
}

func (m *MockWaterService) List(ctx context.Context, userID uuid.UUID, filters *models.RecordFilters) ([]models.WaterIntake, error) {
	args := m.Called(ctx, userID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WaterIntake), args.Error(1)
}

func (m *MockWaterService) Log(ctx context.Context, userID uuid.UUID, req *types.WaterRequest) (*models.WaterIntake, bool, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.WaterIntake), args.Bool(1), args.Error(2)
}

func (m *MockWaterService) QuickAdd(ctx context.Context, userID uuid.UUID, glasses int) (*models.WaterIntake, bool, error) {
	args := m.Called(ctx, userID, glasses)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.WaterIntake), args.Bool(1), args.Error(2)
}

func (m *MockWaterService) Today(ctx context.Context, userID uuid.UUID) (*models.WaterIntake, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WaterIntake), args.Error(1)
}

func (m *MockWaterService) Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateWaterRequest) (*models.WaterIntake, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WaterIntake), args.Error(1)
}

func (m *MockWaterService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockWaterService) Stats(ctx context.Context, userID uuid.UUID, days int) (*metrics.WaterStats, error) {
	args := m.Called(ctx, userID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*metrics.WaterStats), args.Error(1)
}

// MockProfileService is a mock implementation of service.IProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ProfileResponse), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*types.ProfileResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ProfileResponse), args.Error(1)
}

func (m *MockProfileService) ChangePassword(ctx context.Context, userID uuid.UUID, req *types.ChangePasswordRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

func (m *MockProfileService) Stats(ctx context.Context, userID uuid.UUID) (*service.ProfileStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProfileStats), args.Error(1)
}

func (m *MockProfileService) RequestPictureUpload(ctx context.Context, userID uuid.UUID, contentType string) (*types.PictureUpload, error) {
	args := m.Called(ctx, userID, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PictureUpload), args.Error(1)
}

// MockPictureStorage is a mock implementation of service.PictureStorage
type MockPictureStorage struct {
	mock.Mock
}

func (m *MockPictureStorage) PresignUpload(ctx context.Context, objectKey, contentType string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, contentType, expiration)
	return args.String(0), args.Error(1)
}

func (m *MockPictureStorage) PresignDownload(ctx context.Context, objectKey string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expiration)
	return args.String(0), args.Error(1)
}

var (
	_ service.IAuthService    = (*MockAuthService)(nil)
	_ service.IWaterService   = (*MockWaterService)(nil)
	_ service.IProfileService = (*MockProfileService)(nil)
	_ service.PictureStorage  = (*MockPictureStorage)(nil)
)
