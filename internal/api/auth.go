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

// AuthResponse is returned by register and login
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type AuthHandler struct {
	authService  service.IAuthService
	limiter      *middleware.RateLimiter
	tokenTTL     time.Duration
	secureCookie bool
}

func NewAuthHandler(authService service.IAuthService, limiter *middleware.RateLimiter, tokenTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		limiter:      limiter,
		tokenTTL:     tokenTTL,
		secureCookie: secureCookie,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	limited := auth.Group("")
	if h.limiter != nil {
		limited.Use(h.limiter.Middleware())
	}
	limited.POST("/register", h.Register)
	limited.POST("/login", h.Login)

	auth.POST("/logout", h.Logout)
	auth.GET("/me", middleware.AuthMiddleware(h.authService), h.Me)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "user not found")
		return
	}
	h.issueToken(c, user, http.StatusCreated, "user registered successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "user not found")
		return
	}
	h.issueToken(c, user, http.StatusOK, "login successful")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.secureCookie, true)
	respond(c, http.StatusOK, nil, "logged out successfully")
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "user not found")
		return
	}
	respond(c, http.StatusOK, user, "")
}

func (h *AuthHandler) issueToken(c *gin.Context, user *models.User, status int, message string) {
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		respondError(c, err, "user not found")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, int(h.tokenTTL.Seconds()), "/", "", h.secureCookie, true)
	respond(c, status, AuthResponse{User: user, Token: token}, message)
}
