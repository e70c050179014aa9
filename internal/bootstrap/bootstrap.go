package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emurray/registrar/internal/app/controllers"
	appMigrations "github.com/emurray/registrar/internal/app/migrations"
	appRepos "github.com/emurray/registrar/internal/app/repositories"
	appRoutes "github.com/emurray/registrar/internal/app/routes"
	appServices "github.com/emurray/registrar/internal/app/services"
	"github.com/emurray/registrar/internal/config"
	"github.com/emurray/registrar/internal/db"
	"github.com/emurray/registrar/internal/pkg/logger"
	"github.com/emurray/registrar/internal/web"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService      appServices.StudentService
	GradeService        appServices.GradeService
	LecturerService     appServices.LecturerService
	DashboardService    appServices.DashboardService
	ExportService       appServices.ExportService
	StudentController   *appControllers.StudentController
	GradeController     *appControllers.GradeController
	LecturerController  *appControllers.LecturerController
	DashboardController *appControllers.DashboardController
	Repos               *appRepos.Repositories
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabases establishes both store connections and runs the
// relational migrations. A mongo connection failure is fatal to startup,
// matching the relational path.
func SetupDatabases(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, *db.MongoDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	lgr.Info().Msg("Establishing mongo connection...")
	mongoDB, err := db.NewMongoDB(cfg)
	if err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Failed to connect to mongo")
		return nil, nil, err
	}
	lgr.Info().Msg("Store connections successfully established.")

	return database, mongoDB, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, mongoDB *db.MongoDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool, mongoDB.Database)

	// Initialize services
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.GradeService = appServices.NewGradeService(deps.Repos.GradeRepository)
	deps.LecturerService = appServices.NewLecturerService(
		deps.Repos.LecturerRepository,
		deps.Repos.ModuleRepository,
	)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.StudentRepository,
		deps.Repos.GradeRepository,
		deps.Repos.LecturerRepository,
	)
	deps.ExportService = appServices.NewExportService(
		deps.Repos.StudentRepository,
		deps.Repos.GradeRepository,
		deps.Repos.LecturerRepository,
		cfg.Server.ExportDir,
	)

	// Initialize controllers
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.GradeController = appControllers.NewGradeController(deps.GradeService)
	deps.LecturerController = appControllers.NewLecturerController(deps.LecturerService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService, deps.ExportService)

	return deps
}

// SetupRouter configures the Gin engine with templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	router.SetHTMLTemplate(web.Templates())

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.GradeController,
		deps.LecturerController,
		deps.DashboardController,
	)

	return router
}
