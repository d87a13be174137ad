package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/fitlog/backend/internal/middleware"
	"github.com/pageza/fitlog/backend/internal/repository"
	"github.com/pageza/fitlog/backend/internal/service"
	"github.com/pageza/fitlog/backend/internal/types"
)

func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, types.OK(data, message))
}

// respondError maps a service error onto a status and the failed envelope.
// notFound is the message used for a missing or foreign record.
func respondError(c *gin.Context, err error, notFound string) {
	_ = c.Error(err)

	if verrs, ok := types.AsValidationErrors(err); ok {
		c.JSON(http.StatusBadRequest, types.Fail("validation error", verrs...))
		return
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, types.Fail(notFound))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, types.Fail("invalid credentials"))
	case errors.Is(err, service.ErrStorageDisabled):
		c.JSON(http.StatusServiceUnavailable, types.Fail(err.Error()))
	case errors.Is(err, repository.ErrStoreUnavailable),
		errors.Is(err, service.ErrUpsertContention),
		errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, types.Fail("service temporarily unavailable, please retry"))
	default:
		c.JSON(http.StatusInternalServerError, types.Fail("internal server error"))
	}
}

// bindJSON decodes and validates the body into req, replying 400 on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	if verrs, ok := types.AsValidationErrors(err); ok {
		c.JSON(http.StatusBadRequest, types.Fail("validation error", verrs...))
		return false
	}
	c.JSON(http.StatusBadRequest, types.Fail("invalid request body: "+err.Error()))
	return false
}

// currentUser returns the authenticated user id, replying 401 when absent
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, types.Fail("unauthorized"))
	}
	return id, ok
}

// recordID parses the :id path parameter. Malformed ids are reported as not found.
func recordID(c *gin.Context, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, types.Fail(notFound))
		return uuid.Nil, false
	}
	return id, true
}
