package testhelpers

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/fitlog/backend/internal/models"
	"github.com/pageza/fitlog/backend/internal/repository"
)

// TestPassword is the plain password of users made by CreateTestUser
const TestPassword = "password123"

// CreateTestUser inserts a user with default goals and TestPassword
func CreateTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{
		Name:          "Test User",
		Email:         email,
		PasswordHash:  string(hash),
		Gender:        models.GenderOther,
		ActivityLevel: models.ActivityModeratelyActive,
		FitnessGoals:  models.DefaultFitnessGoals(),
	}
	if err := repository.NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}
