package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fitlog/backend/internal/logger"
	"github.com/pageza/fitlog/backend/internal/middleware"
)

// New returns a gin engine with the shared middleware stack: request
// logging, panic recovery, CORS for allowedOrigins and a per-request deadline
func New(allowedOrigins []string, requestTimeout time.Duration) *gin.Engine {
	router := gin.New()

	router.Use(logger.GinMiddleware())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.Timeout(requestTimeout))
	router.NoRoute(middleware.NoRoute())

	return router
}
