package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appAuth "github.com/gocode/elearning/internal/app/auth"
	appControllers "github.com/gocode/elearning/internal/app/controllers"
	appMigrations "github.com/gocode/elearning/internal/app/migrations"
	appRepos "github.com/gocode/elearning/internal/app/repositories"
	appRoutes "github.com/gocode/elearning/internal/app/routes"
	appServices "github.com/gocode/elearning/internal/app/services"
	"github.com/gocode/elearning/internal/config"
	"github.com/gocode/elearning/internal/db"
	appMiddleware "github.com/gocode/elearning/internal/middleware"
	pkgAuth "github.com/gocode/elearning/internal/pkg/auth"
	"github.com/gocode/elearning/internal/pkg/email"
	"github.com/gocode/elearning/internal/pkg/filestorage"
	"github.com/gocode/elearning/internal/pkg/logger"
	"github.com/gocode/elearning/internal/seed"
)

// Default locations, relative to the working directory
var (
	DefaultConfigPath    = filepath.Join("configs", "config.yaml")
	DefaultMigrationsDir = "migrations"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	CourseService        appServices.CourseService
	EnrollmentService    appServices.EnrollmentService
	ProgressService      appServices.ProgressService
	MonitorService       appServices.MonitorService
	AuthController       *appControllers.AuthController
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController
	ProgressController   *appControllers.ProgressController
	MonitorController    *appControllers.MonitorController
	HealthController     *appControllers.HealthController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	AuthzService         *appAuth.AuthorizationService
	EmailService         email.EmailService
	FileStorage          *filestorage.LocalStorage
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase opens the pool and checks that the server answers
func ConnectDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("dbname", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}

	lgr.Info().Msg("Database connection successfully established.")
	return database.Pool, nil
}

// RunMigrations applies every pending migration in dir
func RunMigrations(ctx context.Context, dbPool *pgxpool.Pool, dir string, lgr zerolog.Logger) error {
	if _, err := os.Stat(dir); err != nil {
		lgr.Error().Str("path", dir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", dir, err)
	}

	lgr.Info().Str("path", dir).Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(dbPool, lgr).MigrateFromDirectory(ctx, dir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds the admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	dbPool, err := ConnectDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := RunMigrations(ctx, dbPool, DefaultMigrationsDir, lgr); err != nil {
		dbPool.Close()
		return nil, err
	}

	if err := seed.CreateDefaultData(ctx, dbPool, AdminParams(cfg), lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// AdminParams returns the configured superuser
func AdminParams(cfg *config.Config) seed.AdminParams {
	return seed.AdminParams{
		Email:    cfg.Seed.AdminEmail,
		Username: cfg.Seed.AdminUsername,
		Password: cfg.Seed.AdminPassword,
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Must match the static route registered by the server
	fileStorageBaseURL := strings.TrimRight(cfg.Server.PublicURL, "/") + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL, filestorage.ImageExtensions...)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:      cfg.Email.Host,
		Port:      cfg.Email.Port,
		Username:  cfg.Email.Username,
		Password:  cfg.Email.Password,
		FromName:  cfg.Email.FromName,
		FromEmail: cfg.Email.FromEmail,
		UseTLS:    cfg.Email.UseTLS,
		BaseURL:   cfg.Server.PublicURL,
	}, lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.UserRepository, deps.Repos.CourseRepository)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.LessonRepository,
		deps.Repos.EnrollmentRepository,
		deps.AuthzService,
		deps.FileStorage,
		appServices.CourseOptions{RequireEnrollmentForContent: cfg.Courses.RequireEnrollmentForContent},
		lgr,
	)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.EnrollmentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.UserRepository,
		deps.EmailService,
		lgr,
	)
	deps.ProgressService = appServices.NewProgressService(deps.Repos.LessonRepository, deps.Repos.ProgressRepository, lgr)
	deps.MonitorService = appServices.NewMonitorService(deps.Repos.EnrollmentRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, lgr)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.ProgressController = appControllers.NewProgressController(deps.ProgressService)
	deps.MonitorController = appControllers.NewMonitorController(deps.MonitorService)
	// A nil *pgxpool.Pool must not end up inside the Pinger interface
	if dbPool != nil {
		deps.HealthController = appControllers.NewHealthController(dbPool)
	} else {
		deps.HealthController = appControllers.NewHealthController(nil)
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS(cfg.Server.CORSOrigins))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.EnrollmentController,
		deps.ProgressController,
		deps.MonitorController,
		deps.HealthController,
		deps.AuthMiddleware,
	)

	return router
}
