package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/fitlog/backend/config"
	"github.com/pageza/fitlog/backend/internal/api"
	"github.com/pageza/fitlog/backend/internal/clock"
	"github.com/pageza/fitlog/backend/internal/database"
	"github.com/pageza/fitlog/backend/internal/logger"
	"github.com/pageza/fitlog/backend/internal/metrics"
	"github.com/pageza/fitlog/backend/internal/middleware"
	"github.com/pageza/fitlog/backend/internal/repository"
	"github.com/pageza/fitlog/backend/internal/router"
	"github.com/pageza/fitlog/backend/internal/service"
)

// Deps are the infrastructure handles the server is built from.
// Redis and Storage are optional.
type Deps struct {
	DB      *database.DB
	Redis   *redis.Client
	Storage service.PictureStorage
	Clock   clock.Clock
}

// writeGrace leaves room to write the 503 after a request deadline fires
const writeGrace = 5 * time.Second

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New wires repositories, services and handlers into a server
func New(cfg *config.Config, deps Deps) *Server {
	clk := deps.Clock
	if clk == nil {
		clk = clock.New(cfg.Location())
	}

	users := repository.NewUserRepository(deps.DB.DB)
	workouts := repository.NewWorkoutRepository(deps.DB.DB)
	nutrition := repository.NewNutritionRepository(deps.DB.DB)
	water := repository.NewWaterRepository(deps.DB.DB)

	engine := metrics.NewEngine(workouts, nutrition, water, clk)

	authService := service.NewAuthService(users, cfg.JWTSecret, cfg.JWTTTL)
	workoutService := service.NewWorkoutService(workouts, engine, clk)
	nutritionService := service.NewNutritionService(nutrition, engine, clk)
	waterService := service.NewWaterService(water, engine, clk)
	profileService := service.NewProfileService(users, deps.Storage)

	authLimiter := middleware.NewRateLimiter(deps.Redis, middleware.RateLimitConfig{
		Window:    time.Minute,
		Limit:     cfg.AuthRateLimit,
		KeyPrefix: "ratelimit:auth",
	})

	loc := clk.Location()
	r := router.New(cfg.AllowedOrigins, cfg.RequestTimeout)
	api.RegisterRoutes(r, deps.DB, api.Handlers{
		Auth:      api.NewAuthHandler(authService, authLimiter, cfg.JWTTTL, config.IsProduction()),
		Workouts:  api.NewWorkoutHandler(workoutService, authService, loc),
		Nutrition: api.NewNutritionHandler(nutritionService, authService, loc),
		Water:     api.NewWaterHandler(waterService, authService, loc),
		Profile:   api.NewProfileHandler(profileService, authService),
	})

	return &Server{
		router: r,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout + writeGrace,
		},
	}
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	logger.L().Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
