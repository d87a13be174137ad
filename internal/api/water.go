package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fitlog/backend/internal/middleware"
	"github.com/pageza/fitlog/backend/internal/models"
	"github.com/pageza/fitlog/backend/internal/service"
	"github.com/pageza/fitlog/backend/internal/types"
)

const waterNotFound = "water intake log not found"

// emptyWaterDay is reported by /water/today before anything is logged
var emptyWaterDay = gin.H{"glasses": 0, "amount": 0}

type WaterHandler struct {
	waterService service.IWaterService
	validator    middleware.TokenValidator
	loc          *time.Location
}

func NewWaterHandler(waterService service.IWaterService, validator middleware.TokenValidator, loc *time.Location) *WaterHandler {
	return &WaterHandler{waterService: waterService, validator: validator, loc: loc}
}

func (h *WaterHandler) RegisterRoutes(router *gin.RouterGroup) {
	water := router.Group("/water")
	water.Use(middleware.AuthMiddleware(h.validator))
	{
		water.GET("", h.List)
		water.POST("", h.Log)
		water.POST("/quick-add", h.QuickAdd)
		water.GET("/today", h.Today)
		water.GET("/stats", h.Stats)
		water.PUT("/:id", h.Update)
		water.DELETE("/:id", h.Delete)
	}
}

func (h *WaterHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	filters, err := parseFilters(c, h.loc)
	if err != nil {
		respondError(c, err, waterNotFound)
		return
	}

	days, err := h.waterService.List(c.Request.Context(), userID, filters)
	if err != nil {
		respondError(c, err, waterNotFound)
		return
	}
	respond(c, http.StatusOK, days, "")
}

// Log sets the total for one day: 201 when the day is new, 200 when overwritten
func (h *WaterHandler) Log(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.WaterRequest
	if !bindJSON(c, &req) {
		return
	}

	rec, created, err := h.waterService.Log(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, waterNotFound)
		return
	}
	h.respondUpsert(c, rec, created)
}

func (h *WaterHandler) QuickAdd(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.QuickAddWaterRequest
	if !bindJSON(c, &req) {
		return
	}

	rec, created, err := h.waterService.QuickAdd(c.Request.Context(), userID, *req.Glasses)
	if err != nil {
		respondError(c, err, waterNotFound)
		return
	}
	h.respondUpsert(c, rec, created)
}

func (h *WaterHandler) respondUpsert(c *gin.Context, rec *models.WaterIntake, created bool) {
	if created {
		respond(c, http.StatusCreated, rec, "water intake created successfully")
		return
	}
	respond(c, http.StatusOK, rec, "water intake updated successfully")
}

func (h *WaterHandler) Today(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	rec, err := h.waterService.Today(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, waterNotFound)
		return
	}
	if rec == nil {
		respond(c, http.StatusOK, emptyWaterDay, "")
		return
	}
	respond(c, http.StatusOK, rec, "")
}

func (h *WaterHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := recordID(c, waterNotFound)
	if !ok {
		return
	}
	var req types.UpdateWaterRequest
	if !bindJSON(c, &req) {
		return
	}

	rec, err := h.waterService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, err, waterNotFound)
		return
	}
	respond(c, http.StatusOK, rec, "water intake updated successfully")
}

func (h *WaterHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := recordID(c, waterNotFound)
	if !ok {
		return
	}

	if err := h.waterService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, waterNotFound)
		return
	}
	respond(c, http.StatusOK, nil, "water intake deleted successfully")
}

func (h *WaterHandler) Stats(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	days, err := parsePeriod(c)
	if err != nil {
		respondError(c, err, waterNotFound)
		return
	}

	stats, err := h.waterService.Stats(c.Request.Context(), userID, days)
	if err != nil {
		respondError(c, err, waterNotFound)
		return
	}
	respond(c, http.StatusOK, stats, "")
}
