package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"taskhub-api/internal/api/middleware"
	"taskhub-api/internal/services"
	"taskhub-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError writes the CustomErrorDTO matching a service error. Anything it does not
// recognise is logged and reported as a generic 500.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		abort(c, http.StatusBadRequest, "Validation failed", verr.Fields)
	case errors.Is(err, services.ErrValidation):
		abort(c, http.StatusBadRequest, "Validation failed", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		abort(c, http.StatusUnauthorized, "Invalid credentials", nil)
	case errors.Is(err, services.ErrForbidden):
		abort(c, http.StatusForbidden, "Forbidden", nil)
	case errors.Is(err, services.ErrNotFound):
		abort(c, http.StatusNotFound, "Resource not found", nil)
	case errors.Is(err, services.ErrConflict):
		abort(c, http.StatusConflict, "Resource already exists or is in a conflicting state", nil)
	case errors.Is(err, services.ErrInvalidTransition):
		abort(c, http.StatusUnprocessableEntity, "Operation not allowed in the current state", nil)
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method), zap.String("path", c.FullPath()), zap.Error(err))
		abort(c, http.StatusInternalServerError, "Internal server error", nil)
	}
	_ = c.Error(err)
}

func abort(c *gin.Context, status int, message string, fields map[string]string) {
	c.AbortWithStatusJSON(status, dto.NewCustomError(status, message, fields))
}

// respondBadJSON reports a body that could not be decoded.
func respondBadJSON(c *gin.Context, err error) {
	abort(c, http.StatusBadRequest, "Invalid request body", map[string]string{"body": err.Error()})
}

// pathID parses a positive integer path parameter, writing a 400 when it is not one.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		abort(c, http.StatusBadRequest, "Validation failed", map[string]string{name: "must be a positive integer"})
		return 0, false
	}
	return id, true
}

// actorID returns the authenticated user, writing a 401 when there is none.
func actorID(c *gin.Context) (int64, bool) {
	id, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		abort(c, http.StatusUnauthorized, "Authentication required", nil)
		return 0, false
	}
	return id, true
}
