package api

import (
	"net/http"
	"time"

	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"alcyxob/fitness-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BodyPart  string    `json:"bodyPart,omitempty"`
	Target    string    `json:"target,omitempty"`
	Equipment string    `json:"equipment,omitempty"`
	HasMedia  bool      `json:"hasMedia"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MediaURLResponse carries a presigned download URL for an exercise demo.
type MediaURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:        ex.ID.Hex(),
		Name:      ex.Name,
		BodyPart:  ex.BodyPart,
		Target:    ex.Target,
		Equipment: ex.Equipment,
		HasMedia:  ex.MediaKey != "",
		CreatedAt: ex.CreatedAt,
		UpdatedAt: ex.UpdatedAt,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to a slice of ExerciseResponse DTO.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

// --- Handler Methods ---

// ListExercises godoc
// @Summary List catalog exercises
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param bodyPart query string false "Body part filter"
// @Param target query string false "Target filter"
// @Param equipment query string false "Equipment filter"
// @Success 200 {array} ExerciseResponse "List of exercises"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	filter := repository.ExerciseFilter{
		BodyPart:  c.Query("bodyPart"),
		Target:    c.Query("target"),
		Equipment: c.Query("equipment"),
	}

	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// GetExerciseByID godoc
// @Summary Get one exercise
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise's ObjectID Hex"
// @Success 200 {object} ExerciseResponse
// @Failure 400 {object} gin.H "Invalid exercise ID format"
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExerciseByID(c *gin.Context) {
	exerciseID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), exerciseID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve exercise.")
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// GetExerciseMedia godoc
// @Summary Get a download URL for an exercise demo
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise's ObjectID Hex"
// @Success 200 {object} MediaURLResponse
// @Failure 404 {object} gin.H "Exercise or media not found"
// @Failure 503 {object} gin.H "Media storage not configured"
// @Router /exercises/{id}/media [get]
func (h *ExerciseHandler) GetExerciseMedia(c *gin.Context) {
	exerciseID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	media, err := h.exerciseService.GetMediaURL(c.Request.Context(), exerciseID)
	if err != nil {
		respondServiceError(c, err, "Failed to generate media URL.")
		return
	}
	c.JSON(http.StatusOK, MediaURLResponse{URL: media.URL, ExpiresAt: media.ExpiresAt})
}
