package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fitlog/backend/internal/middleware"
	"github.com/pageza/fitlog/backend/internal/service"
	"github.com/pageza/fitlog/backend/internal/types"
)

const workoutNotFound = "workout not found"

type WorkoutHandler struct {
	workoutService service.IWorkoutService
	validator      middleware.TokenValidator
	loc            *time.Location
}

func NewWorkoutHandler(workoutService service.IWorkoutService, validator middleware.TokenValidator, loc *time.Location) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService, validator: validator, loc: loc}
}

func (h *WorkoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	workouts := router.Group("/workouts")
	workouts.Use(middleware.AuthMiddleware(h.validator))
	{
		workouts.GET("", h.List)
		workouts.POST("", h.Create)
		workouts.GET("/stats", h.Stats)
		workouts.PUT("/:id", h.Update)
		workouts.DELETE("/:id", h.Delete)
	}
}

func (h *WorkoutHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	filters, err := parseFilters(c, h.loc)
	if err != nil {
		respondError(c, err, workoutNotFound)
		return
	}

	workouts, err := h.workoutService.List(c.Request.Context(), userID, filters)
	if err != nil {
		respondError(c, err, workoutNotFound)
		return
	}
	respond(c, http.StatusOK, workouts, "")
}

func (h *WorkoutHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.CreateWorkoutRequest
	if !bindJSON(c, &req) {
		return
	}

	workout, err := h.workoutService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, workoutNotFound)
		return
	}
	respond(c, http.StatusCreated, workout, "workout created successfully")
}

func (h *WorkoutHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := recordID(c, workoutNotFound)
	if !ok {
		return
	}
	var req types.UpdateWorkoutRequest
	if !bindJSON(c, &req) {
		return
	}

	workout, err := h.workoutService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, err, workoutNotFound)
		return
	}
	respond(c, http.StatusOK, workout, "workout updated successfully")
}

func (h *WorkoutHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := recordID(c, workoutNotFound)
	if !ok {
		return
	}

	if err := h.workoutService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, workoutNotFound)
		return
	}
	respond(c, http.StatusOK, nil, "workout deleted successfully")
}

func (h *WorkoutHandler) Stats(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	days, err := parsePeriod(c)
	if err != nil {
		respondError(c, err, workoutNotFound)
		return
	}

	stats, err := h.workoutService.Stats(c.Request.Context(), userID, days)
	if err != nil {
		respondError(c, err, workoutNotFound)
		return
	}
	respond(c, http.StatusOK, stats, "")
}
