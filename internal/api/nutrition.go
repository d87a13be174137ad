package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fitlog/backend/internal/middleware"
	"github.com/pageza/fitlog/backend/internal/service"
	"github.com/pageza/fitlog/backend/internal/types"
)

const nutritionNotFound = "nutrition entry not found"

type NutritionHandler struct {
	nutritionService service.INutritionService
	validator        middleware.TokenValidator
	loc              *time.Location
}

func NewNutritionHandler(nutritionService service.INutritionService, validator middleware.TokenValidator, loc *time.Location) *NutritionHandler {
	return &NutritionHandler{nutritionService: nutritionService, validator: validator, loc: loc}
}

func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup) {
	entries := router.Group("/nutrition")
	entries.Use(middleware.AuthMiddleware(h.validator))
	{
		entries.GET("", h.List)
		entries.POST("", h.Create)
		entries.GET("/stats", h.Stats)
		entries.PUT("/:id", h.Update)
		entries.DELETE("/:id", h.Delete)
	}
}

func (h *NutritionHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	filters, err := parseFilters(c, h.loc)
	if err != nil {
		respondError(c, err, nutritionNotFound)
		return
	}

	entries, err := h.nutritionService.List(c.Request.Context(), userID, filters)
	if err != nil {
		respondError(c, err, nutritionNotFound)
		return
	}
	respond(c, http.StatusOK, entries, "")
}

func (h *NutritionHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.CreateNutritionRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.nutritionService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, nutritionNotFound)
		return
	}
	respond(c, http.StatusCreated, entry, "nutrition entry created successfully")
}

func (h *NutritionHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := recordID(c, nutritionNotFound)
	if !ok {
		return
	}
	var req types.UpdateNutritionRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.nutritionService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, err, nutritionNotFound)
		return
	}
	respond(c, http.StatusOK, entry, "nutrition entry updated successfully")
}

func (h *NutritionHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := recordID(c, nutritionNotFound)
	if !ok {
		return
	}

	if err := h.nutritionService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, nutritionNotFound)
		return
	}
	respond(c, http.StatusOK, nil, "nutrition entry deleted successfully")
}

func (h *NutritionHandler) Stats(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	days, err := parsePeriod(c)
	if err != nil {
		respondError(c, err, nutritionNotFound)
		return
	}

	stats, err := h.nutritionService.Stats(c.Request.Context(), userID, days)
	if err != nil {
		respondError(c, err, nutritionNotFound)
		return
	}
	respond(c, http.StatusOK, stats, "")
}
