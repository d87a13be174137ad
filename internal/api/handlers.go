package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/fitlog/backend/internal/logger"
	"github.com/pageza/fitlog/backend/internal/types"
)

// Pinger reports whether the database answers
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheck returns the health status of the API and its database
func HealthCheck(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.HealthCheck(ctx); err != nil {
			logger.L().Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, types.Fail("database unavailable"))
			return
		}
		respond(c, http.StatusOK, gin.H{"status": "healthy"}, "fitlog API is running")
	}
}

// Handlers groups every resource handler mounted under /api
type Handlers struct {
	Auth      *AuthHandler
	Workouts  *WorkoutHandler
	Nutrition *NutritionHandler
	Water     *WaterHandler
	Profile   *ProfileHandler
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, db Pinger, h Handlers) {
	types.RegisterValidators()

	router.GET("/health", HealthCheck(db))

	api := router.Group("/api")
	api.GET("/health", HealthCheck(db))
	h.Auth.RegisterRoutes(api)
	h.Workouts.RegisterRoutes(api)
	h.Nutrition.RegisterRoutes(api)
	h.Water.RegisterRoutes(api)
	h.Profile.RegisterRoutes(api)
}
