package api

import (
	"errors"
	"net/http"

	"alcyxob/fitness-planner/internal/catalog"
	"alcyxob/fitness-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service and catalog errors onto HTTP status codes.
// Anything unrecognised is logged and reported as fallback with a 500.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrProfileIncomplete), errors.Is(err, service.ErrPreferencesNotFound):
		abortWithError(c, http.StatusPreconditionFailed, "Complete your profile first.")
	case errors.Is(err, service.ErrValidationFailed),
		errors.Is(err, service.ErrInvalidWindow),
		errors.Is(err, catalog.ErrUnsupportedFrequency):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrTemplateNotFound), errors.Is(err, catalog.ErrMissingTierVariant):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrWorkoutNotFound),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrMediaNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrWorkoutAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrPlanPersistenceFailed):
		_ = c.Error(err)
		abortWithError(c, http.StatusServiceUnavailable, "Plan could not be saved, try again later.")
	case errors.Is(err, service.ErrMediaUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	default:
		abortWithServerError(c, err, fallback)
	}
}
