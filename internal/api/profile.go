package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fitlog/backend/internal/middleware"
	"github.com/pageza/fitlog/backend/internal/service"
	"github.com/pageza/fitlog/backend/internal/types"
)

const userNotFound = "user not found"

type ProfileHandler struct {
	profileService service.IProfileService
	validator      middleware.TokenValidator
}

func NewProfileHandler(profileService service.IProfileService, validator middleware.TokenValidator) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		validator:      validator,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	profile.Use(middleware.AuthMiddleware(h.validator))
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.GET("/stats", h.Stats)
		profile.PUT("/password", h.ChangePassword)
		profile.POST("/picture", h.RequestPictureUpload)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, userNotFound)
		return
	}
	respond(c, http.StatusOK, profile, "")
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, userNotFound)
		return
	}
	respond(c, http.StatusOK, profile, "profile updated successfully")
}

// Stats reports BMI, BMR and TDEE; each is null when the profile lacks inputs
func (h *ProfileHandler) Stats(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	stats, err := h.profileService.Stats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, userNotFound)
		return
	}
	respond(c, http.StatusOK, stats, "")
}

func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.profileService.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		respondError(c, err, userNotFound)
		return
	}
	respond(c, http.StatusOK, nil, "password updated successfully")
}

func (h *ProfileHandler) RequestPictureUpload(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.PictureUploadRequest
	if !bindJSON(c, &req) {
		return
	}

	upload, err := h.profileService.RequestPictureUpload(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		respondError(c, err, userNotFound)
		return
	}
	respond(c, http.StatusOK, upload, "")
}
