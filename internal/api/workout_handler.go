package api

import (
	"net/http"
	"time"

	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds plan generation and workout management.
type WorkoutHandler struct {
	planService    service.PlanService
	workoutService service.WorkoutService
}

func NewWorkoutHandler(planService service.PlanService, workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{planService: planService, workoutService: workoutService}
}

// --- DTOs ---

type WorkoutResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"userId"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	TemplateName    string             `json:"templateName"`
	SplitName       string             `json:"splitName"`
	DayIndex        int                `json:"dayIndex"`
	GenerationRunID string             `json:"generationRunId,omitempty"`
	WorkoutType     domain.WorkoutType `json:"workoutType"`
	CreatedAt       time.Time          `json:"createdAt"`
	Sets            []SetResponse      `json:"sets,omitempty"`
}

type SetResponse struct {
	ID           string   `json:"id"`
	ExerciseID   string   `json:"exerciseId"`
	ExerciseName string   `json:"exerciseName"`
	PlannedReps  int      `json:"plannedReps"`
	Weight       *float64 `json:"weight"`
	RestTime     int      `json:"restTime"`
	SetOrder     int      `json:"setOrder"`
}

// PlanResponse is returned by plan generation.
type PlanResponse struct {
	GenerationRunID string            `json:"generationRunId"`
	SplitName       string            `json:"splitName"`
	Workouts        []WorkoutResponse `json:"workouts"`
}

func MapWorkoutToResponse(w *domain.GeneratedWorkout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	return WorkoutResponse{
		ID:              w.ID.Hex(),
		UserID:          w.UserID.Hex(),
		Title:           w.Title,
		Description:     w.Description,
		TemplateName:    w.TemplateName,
		SplitName:       w.SplitName,
		DayIndex:        w.DayIndex,
		GenerationRunID: w.GenerationRunID,
		WorkoutType:     w.WorkoutType,
		CreatedAt:       w.CreatedAt,
	}
}

func MapWorkoutsToResponse(workouts []domain.GeneratedWorkout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = MapWorkoutToResponse(&workouts[i])
	}
	return responses
}

func MapSetsToResponse(sets []domain.WorkoutSet) []SetResponse {
	responses := make([]SetResponse, len(sets))
	for i, s := range sets {
		responses[i] = SetResponse{
			ID:           s.ID.Hex(),
			ExerciseID:   s.ExerciseID.Hex(),
			ExerciseName: s.ExerciseName,
			PlannedReps:  s.PlannedReps,
			Weight:       s.Weight,
			RestTime:     s.RestTime,
			SetOrder:     s.SetOrder,
		}
	}
	return responses
}

// --- Handler Methods ---

// GeneratePlan godoc
// @Summary Generate a training plan
// @Description Builds one workout per training day and stores it. Without a body the saved
// @Description survey answers are used; a body generates from the given answers without saving them.
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param preferences body PreferencesRequest false "Survey answers to generate from"
// @Success 201 {object} PlanResponse
// @Failure 400 {object} gin.H "Invalid input or unsupported workouts per week"
// @Failure 412 {object} gin.H "Profile incomplete"
// @Failure 503 {object} gin.H "Plan could not be saved"
// @Router /me/plans [post]
func (h *WorkoutHandler) GeneratePlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var (
		workouts []domain.GeneratedWorkout
		err      error
	)
	if c.Request.ContentLength > 0 {
		var req PreferencesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
			return
		}
		workouts, err = h.planService.GeneratePlanWithPreferences(c.Request.Context(), userID, req.toPreferences())
	} else {
		workouts, err = h.planService.GeneratePlan(c.Request.Context(), userID)
	}
	if err != nil {
		respondServiceError(c, err, "Failed to generate plan.")
		return
	}

	resp := PlanResponse{Workouts: MapWorkoutsToResponse(workouts)}
	if len(workouts) > 0 {
		resp.GenerationRunID = workouts[0].GenerationRunID
		resp.SplitName = workouts[0].SplitName
	}
	c.JSON(http.StatusCreated, resp)
}

// ListWorkouts godoc
// @Summary List my workouts
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} WorkoutResponse
// @Router /me/workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve workouts.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}

// GetWorkout godoc
// @Summary Get one of my workouts with its sets
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param workoutId path string true "Workout's ObjectID Hex"
// @Success 200 {object} WorkoutResponse
// @Failure 403 {object} gin.H "Workout belongs to another user"
// @Failure 404 {object} gin.H "Workout not found"
// @Router /me/workouts/{workoutId} [get]
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathObjectID(c, "workoutId")
	if !ok {
		return
	}

	details, err := h.workoutService.GetWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve workout.")
		return
	}
	resp := MapWorkoutToResponse(&details.GeneratedWorkout)
	resp.Sets = MapSetsToResponse(details.Sets)
	c.JSON(http.StatusOK, resp)
}

// DeleteWorkout godoc
// @Summary Delete one of my workouts
// @Description Deletes the workout and its sets. Sessions that referenced it are kept and detached.
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param workoutId path string true "Workout's ObjectID Hex"
// @Success 200 {object} service.CleanupResult
// @Failure 403 {object} gin.H "Workout belongs to another user"
// @Failure 404 {object} gin.H "Workout not found"
// @Router /me/workouts/{workoutId} [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathObjectID(c, "workoutId")
	if !ok {
		return
	}

	result, err := h.workoutService.DeleteWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		respondServiceError(c, err, "Failed to delete workout.")
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelSubscription godoc
// @Summary Clean up after a subscription cancellation
// @Description Removes every auto-generated workout with its sets and detaches sessions. Custom workouts are kept.
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.CleanupResult
// @Router /me/subscription/cancel [post]
func (h *WorkoutHandler) CancelSubscription(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.workoutService.CleanupAutoGenerated(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to clean up workouts.")
		return
	}
	c.JSON(http.StatusOK, result)
}
