package api

import (
	"net/http"
	"strconv"
	"time"

	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileHandler serves the user's own profile, survey answers, sessions and
// muscle activity.
type ProfileHandler struct {
	preferencesService service.PreferencesService
	sessionService     service.SessionService
	activityService    service.ActivityService
}

func NewProfileHandler(
	preferencesService service.PreferencesService,
	sessionService service.SessionService,
	activityService service.ActivityService,
) *ProfileHandler {
	return &ProfileHandler{
		preferencesService: preferencesService,
		sessionService:     sessionService,
		activityService:    activityService,
	}
}

// --- DTOs ---

// UpsertProfileRequest carries the profile fields taken from the identity provider.
type UpsertProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
}

// PreferencesRequest is the survey payload.
type PreferencesRequest struct {
	Goal            domain.Goal            `json:"goal" binding:"required"`
	ExperienceLevel domain.ExperienceLevel `json:"experienceLevel"`
	WorkoutsPerWeek int                    `json:"workoutsPerWeek" binding:"required"`
	WorkoutSplit    string                 `json:"workoutSplit"`
	SetsPerExercise *int                   `json:"setsPerExercise"`
	RestTime        *int                   `json:"restTime"`
	GenderTier      domain.GenderTier      `json:"genderTier" binding:"omitempty,oneof=male female senior"`
}

func (r PreferencesRequest) toPreferences() *domain.UserPreferences {
	return &domain.UserPreferences{
		Goal:            r.Goal,
		ExperienceLevel: r.ExperienceLevel,
		WorkoutsPerWeek: r.WorkoutsPerWeek,
		WorkoutSplit:    r.WorkoutSplit,
		SetsPerExercise: r.SetsPerExercise,
		RestTime:        r.RestTime,
		GenderTier:      r.GenderTier,
	}
}

// RecordSessionRequest describes one workout attempt.
type RecordSessionRequest struct {
	WorkoutID string               `json:"workoutId"`
	Status    domain.SessionStatus `json:"status" binding:"required"`
	StartTime *time.Time           `json:"startTime"`
	Duration  int                  `json:"duration"`
}

// MuscleActivityResponse wraps the per-muscle states of the activity view.
type MuscleActivityResponse struct {
	WindowDays int                           `json:"windowDays,omitempty"`
	Muscles    map[string]domain.MuscleState `json:"muscles"`
}

// --- Handler Methods ---

// GetProfile godoc
// @Summary Get my profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Profile not created yet"
// @Router /me [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	user, err := h.preferencesService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve profile.")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpsertProfile godoc
// @Summary Create my profile on first contact
// @Description Creates the planner profile for the token subject. An existing profile is returned unchanged.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpsertProfileRequest true "Profile details"
// @Success 200 {object} domain.User
// @Failure 400 {object} gin.H "Invalid input"
// @Router /me/profile [put]
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.preferencesService.EnsureProfile(c.Request.Context(), userID, req.Name, req.Email)
	if err != nil {
		respondServiceError(c, err, "Failed to save profile.")
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetPreferences godoc
// @Summary Get my survey answers
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.UserPreferences
// @Failure 412 {object} gin.H "Survey not answered yet"
// @Router /me/preferences [get]
func (h *ProfileHandler) GetPreferences(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	prefs, err := h.preferencesService.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve preferences.")
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// SavePreferences godoc
// @Summary Save my survey answers
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param preferences body PreferencesRequest true "Survey answers"
// @Success 200 {object} domain.UserPreferences
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Profile not created yet"
// @Router /me/preferences [put]
func (h *ProfileHandler) SavePreferences(c *gin.Context) {
	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	saved, err := h.preferencesService.SavePreferences(c.Request.Context(), userID, req.toPreferences())
	if err != nil {
		respondServiceError(c, err, "Failed to save preferences.")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// CompleteSurvey godoc
// @Summary Mark the preference survey as done
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 412 {object} gin.H "Preferences not saved yet"
// @Router /me/survey/complete [post]
func (h *ProfileHandler) CompleteSurvey(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	user, err := h.preferencesService.CompleteSurvey(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to complete survey.")
		return
	}
	c.JSON(http.StatusOK, user)
}

// RecordSession godoc
// @Summary Record a workout attempt
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body RecordSessionRequest true "Session"
// @Success 201 {object} domain.Session
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 403 {object} gin.H "Workout belongs to another user"
// @Failure 404 {object} gin.H "Workout not found"
// @Router /me/sessions [post]
func (h *ProfileHandler) RecordSession(c *gin.Context) {
	var req RecordSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	session := &domain.Session{Status: req.Status, Duration: req.Duration}
	if req.StartTime != nil {
		session.StartTime = req.StartTime.UTC()
	}
	if req.WorkoutID != "" {
		workoutID, err := primitive.ObjectIDFromHex(req.WorkoutID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid workoutId format.")
			return
		}
		session.WorkoutID = &workoutID
	}

	recorded, err := h.sessionService.RecordSession(c.Request.Context(), userID, session)
	if err != nil {
		respondServiceError(c, err, "Failed to record session.")
		return
	}
	c.JSON(http.StatusCreated, recorded)
}

// GetMuscleActivity godoc
// @Summary Get per-muscle activity for the recent window
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Param windowDays query int false "Window length in days (default 7, max 90)"
// @Success 200 {object} MuscleActivityResponse
// @Failure 400 {object} gin.H "Invalid window"
// @Router /me/muscle-activity [get]
func (h *ProfileHandler) GetMuscleActivity(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	windowDays := 0
	if raw := c.Query("windowDays"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			abortWithError(c, http.StatusBadRequest, "windowDays must be a positive integer.")
			return
		}
		windowDays = n
	}

	states, err := h.activityService.AggregateActivity(c.Request.Context(), userID, windowDays)
	if err != nil {
		respondServiceError(c, err, "Failed to compute muscle activity.")
		return
	}
	c.JSON(http.StatusOK, MuscleActivityResponse{WindowDays: windowDays, Muscles: states})
}
