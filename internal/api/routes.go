package api

import (
	"net/http"

	"alcyxob/fitness-planner/internal/catalog"
	"alcyxob/fitness-planner/internal/instrumentation"
	"alcyxob/fitness-planner/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles what the HTTP layer depends on.
type Services struct {
	Registry    *catalog.Registry
	Plans       service.PlanService
	Workouts    service.WorkoutService
	Preferences service.PreferencesService
	Sessions    service.SessionService
	Activity    service.ActivityService
	Exercises   service.ExerciseService

	// Optional. /metrics is served only when MetricsRegistry is set.
	Instr           *instrumentation.Instrumentation
	MetricsRegistry *prometheus.Registry
}

func SetupRoutes(router *gin.Engine, jwtSecret string, services Services) {
	catalogHandler := NewCatalogHandler(services.Registry)
	exerciseHandler := NewExerciseHandler(services.Exercises)
	workoutHandler := NewWorkoutHandler(services.Plans, services.Workouts)
	profileHandler := NewProfileHandler(services.Preferences, services.Sessions, services.Activity)

	authMiddleware := AuthMiddleware(jwtSecret)

	if services.Instr != nil {
		router.Use(RequestMetrics(services.Instr))
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if services.MetricsRegistry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(services.MetricsRegistry, promhttp.HandlerOpts{})))
	}

	apiV1 := router.Group("/api/v1")

	// --- Public catalog ---
	catalogGroup := apiV1.Group("/catalog")
	{
		catalogGroup.GET("/splits", catalogHandler.ListSplits)
		catalogGroup.GET("/templates/:name", catalogHandler.GetTemplate)
		catalogGroup.GET("/muscles", catalogHandler.ListMuscles)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		me := protected.Group("/me")
		{
			me.GET("", profileHandler.GetProfile)
			me.PUT("/profile", profileHandler.UpsertProfile)
			me.GET("/preferences", profileHandler.GetPreferences)
			me.PUT("/preferences", profileHandler.SavePreferences)
			me.POST("/survey/complete", profileHandler.CompleteSurvey)

			me.POST("/plans", workoutHandler.GeneratePlan)
			me.GET("/workouts", workoutHandler.ListWorkouts)
			me.GET("/workouts/:workoutId", workoutHandler.GetWorkout)
			me.DELETE("/workouts/:workoutId", workoutHandler.DeleteWorkout)
			me.POST("/subscription/cancel", workoutHandler.CancelSubscription)

			me.POST("/sessions", profileHandler.RecordSession)
			me.GET("/muscle-activity", profileHandler.GetMuscleActivity)
		}

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExerciseByID)
			exerciseGroup.GET("/:id/media", exerciseHandler.GetExerciseMedia)
		}
	}
}
