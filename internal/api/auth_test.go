package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fitlog/backend/internal/middleware"
	"github.com/pageza/fitlog/backend/internal/models"
	"github.com/pageza/fitlog/backend/internal/service"
	"github.com/pageza/fitlog/backend/internal/types"
)

func TestAuthRegisterSetsCookie(t *testing.T) {
	userID := uuid.New()
	router, authService := newTestRouter(t, userID)
	NewAuthHandler(authService, nil, time.Hour, false).RegisterRoutes(router.Group("/api"))

	user := &models.User{ID: userID, Name: "John Doe", Email: "john@example.com"}
	authService.On("Register", mock.Anything, mock.MatchedBy(func(r *types.RegisterRequest) bool {
		return r.Email == "john@example.com"
	})).Return(user, nil)
	authService.On("GenerateToken", user).Return("signed", nil)

	rr := doRequest(t, router, http.MethodPost, "/api/auth/register", types.RegisterRequest{
		Name: "John Doe", Email: "john@example.com", Password: "password123",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var got AuthResponse
	decode(t, rr, &got)
	assert.Equal(t, "signed", got.Token)
	assert.Equal(t, userID, got.User.ID)
	assert.NotContains(t, rr.Body.String(), "password")

	cookie := rr.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(cookie, middleware.TokenCookie+"=signed"))
	assert.Contains(t, cookie, "HttpOnly")
	assert.Contains(t, cookie, "SameSite=Lax")
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	router, authService := newTestRouter(t, uuid.New())
	NewAuthHandler(authService, nil, time.Hour, false).RegisterRoutes(router.Group("/api"))

	authService.On("Register", mock.Anything, mock.Anything).
		Return(nil, types.NewValidationError("email", "is already registered"))

	rr := doRequest(t, router, http.MethodPost, "/api/auth/register", types.RegisterRequest{
		Name: "John Doe", Email: "john@example.com", Password: "password123",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decode(t, rr, nil)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "email", resp.Errors[0].Field)
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	router, authService := newTestRouter(t, uuid.New())
	NewAuthHandler(authService, nil, time.Hour, false).RegisterRoutes(router.Group("/api"))

	authService.On("Login", mock.Anything, "john@example.com", "wrong").Return(nil, service.ErrInvalidCredentials)

	rr := doRequest(t, router, http.MethodPost, "/api/auth/login", types.LoginRequest{
		Email: "john@example.com", Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Header().Get("Set-Cookie"))
}

func TestAuthMe(t *testing.T) {
	userID := uuid.New()
	router, authService := newTestRouter(t, userID)
	NewAuthHandler(authService, nil, time.Hour, false).RegisterRoutes(router.Group("/api"))

	authService.On("GetUserByID", mock.Anything, userID).Return(&models.User{ID: userID, Email: "john@example.com"}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doUnauthenticated(t, router, http.MethodGet, "/api/auth/me")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthLogoutClearsCookie(t *testing.T) {
	router, authService := newTestRouter(t, uuid.New())
	NewAuthHandler(authService, nil, time.Hour, false).RegisterRoutes(router.Group("/api"))

	rr := doUnauthenticated(t, router, http.MethodPost, "/api/auth/logout")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Set-Cookie"), "Max-Age=0")
}
