package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fitlog/backend/internal/models"
	"github.com/pageza/fitlog/backend/internal/repository"
	"github.com/pageza/fitlog/backend/internal/service"
	"github.com/pageza/fitlog/backend/internal/testhelpers"
	"github.com/pageza/fitlog/backend/internal/types"
)

const testSecret = "test-jwt-secret"

func TestRegisterAppliesDefaults(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := service.NewAuthService(repository.NewUserRepository(db), testSecret, time.Hour)

	user, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name: "John Doe", Email: "John@Example.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", user.Email)
	assert.Equal(t, models.GenderOther, user.Gender)
	assert.Equal(t, models.ActivityModeratelyActive, user.ActivityLevel)
	assert.Equal(t, models.DefaultFitnessGoals(), user.FitnessGoals)
	assert.NotEqual(t, "secret1", user.PasswordHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := service.NewAuthService(repository.NewUserRepository(db), testSecret, time.Hour)
	ctx := context.Background()

	req := &types.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret1"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	verrs, ok := types.AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, "email", verrs[0].Field)
}

func TestLogin(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := service.NewAuthService(repository.NewUserRepository(db), testSecret, time.Hour)
	user := testhelpers.CreateTestUser(t, db, "login@example.com")
	ctx := context.Background()

	got, err := svc.Login(ctx, "LOGIN@example.com", testhelpers.TestPassword)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Login(ctx, "login@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", testhelpers.TestPassword)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := service.NewAuthService(nil, testSecret, time.Hour)
	user := &models.User{ID: uuid.New(), Email: "token@example.com"}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "token@example.com", claims.Email)

	other := service.NewAuthService(nil, "another-secret", time.Hour)
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestValidateTokenRejectsExpiredAndForeignAlgorithms(t *testing.T) {
	expired := service.NewAuthService(nil, testSecret, -time.Minute)
	user := &models.User{ID: uuid.New(), Email: "old@example.com"}

	token, err := expired.GenerateToken(user)
	require.NoError(t, err)
	_, err = expired.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &types.TokenClaims{UserID: user.ID}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = expired.ValidateToken(unsigned)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
