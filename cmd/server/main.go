package main

import (
	"alcyxob/fitness-planner/internal/api"
	"alcyxob/fitness-planner/internal/catalog"
	"alcyxob/fitness-planner/internal/config"
	"alcyxob/fitness-planner/internal/importer"
	"alcyxob/fitness-planner/internal/instrumentation"
	"alcyxob/fitness-planner/internal/logging"
	"alcyxob/fitness-planner/internal/repository"
	"alcyxob/fitness-planner/internal/repository/memory"
	"alcyxob/fitness-planner/internal/repository/mongo"
	"alcyxob/fitness-planner/internal/service"
	"alcyxob/fitness-planner/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// repositories is the set of gateways the services run on, whichever driver
// backs them.
type repositories struct {
	users       repository.UserRepository
	preferences repository.PreferencesRepository
	exercises   repository.ExerciseRepository
	workouts    repository.WorkoutRepository
	sets        repository.WorkoutSetRepository
	sessions    repository.SessionRepository
	tx          repository.Transactor
}

// @title Training Planner API
// @version 1.0
// @description Generates weekly training plans and reports per-muscle activity.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format, cfg.Log.File); err != nil {
		log.Fatalf("FATAL: Could not set up logging: %v", err)
	}
	log.WithField("driver", cfg.Database.Driver).Info("Starting training planner server...")

	// --- Training catalog ---
	registry, err := catalog.Load()
	if err != nil {
		log.Fatalf("FATAL: Training catalog is inconsistent: %v", err)
	}
	log.WithField("templates", len(registry.TemplateNames())).Info("Training catalog loaded.")

	// --- Repositories ---
	var repos repositories
	switch cfg.Database.Driver {
	case config.DriverMemory:
		repos = setupMemory(cfg.Database.SeedFile, registry)
	default:
		dbClient, err := mongo.ConnectDB(context.Background(), cfg.Database.URI, "fitness-planner")
		if err != nil {
			log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
		}
		defer func() {
			log.Info("Disconnecting MongoDB...")
			if err := mongo.DisconnectDB(dbClient); err != nil {
				log.Errorf("Failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.Info("Database connection established.")

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			mongo.EnsureIndexes(ctx, appDB)
			log.Info("Index creation process completed.")
		}()

		repos = repositories{
			users:       mongo.NewMongoUserRepository(appDB),
			preferences: mongo.NewMongoPreferencesRepository(appDB),
			exercises:   mongo.NewMongoExerciseRepository(appDB),
			workouts:    mongo.NewMongoWorkoutRepository(appDB),
			sets:        mongo.NewMongoWorkoutSetRepository(appDB),
			sessions:    mongo.NewMongoSessionRepository(appDB),
			tx:          mongo.NewMongoTransactor(dbClient),
		}
	}

	// --- Storage (optional) ---
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled() {
		fileStorage, err = storage.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
	} else {
		log.Warn("S3 is not configured; exercise media URLs are unavailable.")
	}

	// --- Metrics ---
	promRegistry := instrumentation.SetupPrometheus()
	instr := instrumentation.NewInstrumentationWithRegisterer("planner", "server", promRegistry)

	// --- Services ---
	services := api.Services{
		Registry:    registry,
		Plans:       service.NewPlanService(registry, repos.users, repos.preferences, repos.exercises, repos.workouts, repos.sets, repos.tx, instr),
		Workouts:    service.NewWorkoutService(repos.workouts, repos.sets, repos.sessions, repos.tx, instr),
		Preferences: service.NewPreferencesService(registry, repos.users, repos.preferences),
		Sessions:    service.NewSessionService(repos.sessions, repos.workouts),
		Activity: service.NewActivityService(registry, repos.sessions, repos.sets, repos.exercises,
			cfg.Planner.ActivityWindowDays, cfg.Planner.IntensitySaturationDays),
		Exercises: service.NewExerciseService(repos.exercises, fileStorage, cfg.S3.URLExpiry),

		Instr:           instr,
		MetricsRegistry: promRegistry,
	}

	// --- Gin ---
	if log.GetLevel() < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(logging.GinLogger(), gin.Recovery())
	api.SetupRoutes(router, cfg.JWT.Secret, services)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Infof("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exiting.")
}

// setupMemory builds the in-process driver and seeds its exercise catalog.
func setupMemory(seedFile string, registry *catalog.Registry) repositories {
	store := memory.NewStore()
	r := store.Repositories()

	if seedFile != "" {
		f, err := os.Open(seedFile)
		if err != nil {
			log.Fatalf("FATAL: Could not open seed file: %v", err)
		}
		defer f.Close()
		records, err := importer.Decode(f)
		if err != nil {
			log.Fatalf("FATAL: Could not parse seed file: %v", err)
		}
		report, err := importer.Import(context.Background(), r.Exercises, registry, records)
		if err != nil {
			log.Fatalf("FATAL: Could not seed exercise catalog: %v", err)
		}
		log.WithFields(log.Fields{
			"inserted":   report.Inserted,
			"unresolved": len(report.Unresolved),
		}).Info("Exercise catalog seeded.")
	} else {
		log.Warn("Memory driver without seed file; plans will have no resolvable exercises.")
	}

	return repositories{
		users:       r.Users,
		preferences: r.Preferences,
		exercises:   r.Exercises,
		workouts:    r.Workouts,
		sets:        r.WorkoutSets,
		sessions:    r.Sessions,
		tx:          store,
	}
}
