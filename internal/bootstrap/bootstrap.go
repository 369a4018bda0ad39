package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/okandemir/schoolhub/internal/app/controllers"
	appMigrations "github.com/okandemir/schoolhub/internal/app/migrations"
	appRepos "github.com/okandemir/schoolhub/internal/app/repositories"
	appRoutes "github.com/okandemir/schoolhub/internal/app/routes"
	appServices "github.com/okandemir/schoolhub/internal/app/services"
	"github.com/okandemir/schoolhub/internal/config"
	"github.com/okandemir/schoolhub/internal/db"
	appMiddleware "github.com/okandemir/schoolhub/internal/middleware"
	pkgAuth "github.com/okandemir/schoolhub/internal/pkg/auth"
	"github.com/okandemir/schoolhub/internal/pkg/logger"
	"github.com/okandemir/schoolhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos *appRepos.Repositories

	AuthService       *appServices.AuthService
	StudentService    *appServices.StudentService
	StaffService      *appServices.StaffService
	UserService       *appServices.UserService
	AttendanceService *appServices.AttendanceService
	GradeService      *appServices.GradeService
	FinanceService    *appServices.FinanceService
	ReportService     *appServices.ReportService
	DashboardService  *appServices.DashboardService

	AuthController       *appControllers.AuthController
	StudentController    *appControllers.StudentController
	StaffController      *appControllers.StaffController
	UserController       *appControllers.UserController
	AttendanceController *appControllers.AttendanceController
	GradeController      *appControllers.GradeController
	FinanceController    *appControllers.FinanceController
	ReportController     *appControllers.ReportController
	DashboardController  *appControllers.DashboardController

	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
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

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(context.Background(), database.Pool, lgr); err != nil {
		// Startup continues; the admin can still be provisioned by hand.
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, cfg.School.StudentNumberPrefix)
	deps.StaffService = appServices.NewStaffService(deps.Repos.StaffRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.AttendanceService = appServices.NewAttendanceService(database, deps.Repos.AttendanceRepository)
	deps.GradeService = appServices.NewGradeService(deps.Repos.GradeRepository, deps.Repos.StudentRepository)
	deps.FinanceService = appServices.NewFinanceService(deps.Repos.FinanceRepository, deps.Repos.StudentRepository)
	deps.ReportService = appServices.NewReportService(
		database,
		deps.Repos.StudentRepository,
		deps.Repos.GradeRepository,
		deps.Repos.AttendanceRepository,
		deps.Repos.FinanceRepository,
		deps.Repos.ReportRepository,
		cfg.School.ExpectedAnnualFee,
	)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.StudentRepository,
		deps.Repos.StaffRepository,
		deps.Repos.AttendanceRepository,
		deps.Repos.FinanceRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.StaffController = appControllers.NewStaffController(deps.StaffService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.GradeController = appControllers.NewGradeController(deps.GradeService)
	deps.FinanceController = appControllers.NewFinanceController(deps.FinanceService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger())
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.StaffController,
		deps.UserController,
		deps.AttendanceController,
		deps.GradeController,
		deps.FinanceController,
		deps.ReportController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	return router
}
