// Package bootstrap wires configuration, database, services and the HTTP
// router together for the server entrypoint.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/selin/studyhub/docs" // generated swagger docs
	appControllers "github.com/selin/studyhub/internal/app/controllers"
	appMigrations "github.com/selin/studyhub/internal/app/migrations"
	appRepos "github.com/selin/studyhub/internal/app/repositories"
	appRoutes "github.com/selin/studyhub/internal/app/routes"
	appServices "github.com/selin/studyhub/internal/app/services"
	"github.com/selin/studyhub/internal/config"
	"github.com/selin/studyhub/internal/db"
	appMiddleware "github.com/selin/studyhub/internal/middleware"
	"github.com/selin/studyhub/internal/pkg/genai"
	"github.com/selin/studyhub/internal/pkg/logger"
	appValidation "github.com/selin/studyhub/internal/pkg/validation"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services *appServices.Services
	Repos    *appRepos.Repositories
	GenAI    *genai.Client

	AssignmentController   *appControllers.AssignmentController
	ScheduleController     *appControllers.ScheduleController
	StudySessionController *appControllers.StudySessionController
	ChatController         *appControllers.ChatController
	TimetableController    *appControllers.TimetableController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A missing collaborator API key fails here, at startup, not at request time.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes repositories, the collaborator client,
// services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.GenAI = genai.NewClient(genai.Config{
		APIKey:      cfg.GenAI.APIKey,
		BaseURL:     cfg.GenAI.BaseURL,
		Model:       cfg.GenAI.Model,
		VisionModel: cfg.GenAI.VisionModel,
		Timeout:     cfg.GenAITimeout(),
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.GenAI)

	deps.AssignmentController = appControllers.NewAssignmentController(deps.Services.AssignmentService)
	deps.ScheduleController = appControllers.NewScheduleController(deps.Services.ScheduleService)
	deps.StudySessionController = appControllers.NewStudySessionController(deps.Services.StudySessionService)
	deps.ChatController = appControllers.NewChatController(deps.Services.ChatService)
	deps.TimetableController = appControllers.NewTimetableController(deps.Services.TimetableService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := appValidation.RegisterRules(v); err != nil {
			lgr.Error().Err(err).Msg("Failed to register custom validation rules")
		}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AssignmentController,
		deps.ScheduleController,
		deps.StudySessionController,
		deps.ChatController,
		deps.TimetableController,
	)

	return router
}
