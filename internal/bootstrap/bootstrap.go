package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yigit/advisory/internal/app/advisor"
	appControllers "github.com/yigit/advisory/internal/app/controllers"
	appMigrations "github.com/yigit/advisory/internal/app/migrations"
	appRepos "github.com/yigit/advisory/internal/app/repositories"
	appRoutes "github.com/yigit/advisory/internal/app/routes"
	appServices "github.com/yigit/advisory/internal/app/services"
	"github.com/yigit/advisory/internal/config"
	"github.com/yigit/advisory/internal/db"
	appMiddleware "github.com/yigit/advisory/internal/middleware"
	pkgAuth "github.com/yigit/advisory/internal/pkg/auth"
	"github.com/yigit/advisory/internal/pkg/cache"
	"github.com/yigit/advisory/internal/pkg/helpers"
	"github.com/yigit/advisory/internal/pkg/logger"
	"github.com/yigit/advisory/internal/pkg/validation"
	"github.com/yigit/advisory/internal/pkg/websocket"
	"github.com/yigit/advisory/internal/seed"
)

// DefaultConfigPath is where the yaml configuration is looked up
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Database *db.PostgresDB
	Cache    *cache.Cache // nil when redis is disabled or unreachable
	Repos    *appRepos.Repositories
	Hub      *websocket.Hub

	JWTService      *pkgAuth.JWTService
	AuthService     *appServices.AuthService
	StudentService  appServices.StudentService
	CatalogService  appServices.CatalogService
	ResultService   appServices.ResultService
	StandingService appServices.StandingService
	AdvisorService  appServices.AdvisorService

	AuthController     *appControllers.AuthController
	StudentController  *appControllers.StudentController
	CourseController   *appControllers.CourseController
	ResultController   *appControllers.ResultController
	StandingController *appControllers.StandingController
	WebSocketHandler   *websocket.Handler // nil when the chat socket is disabled
	AuthMiddleware     *appMiddleware.AuthMiddleware

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Format: logger.Format(cfg.Logging.Format),
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase opens the pool and applies pending migrations.
func ConnectDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	if err := RunMigrations(ctx, database, cfg.Database.MigrationsDir, lgr); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// RunMigrations applies every pending migration file in dir
func RunMigrations(ctx context.Context, database *db.PostgresDB, dir string, lgr zerolog.Logger) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		lgr.Error().Str("path", dir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", dir, err)
	}

	lgr.Info().Str("path", dir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, dir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SeedDemoData loads the demo curriculum in one transaction
func SeedDemoData(ctx context.Context, database *db.PostgresDB, opts seed.Options, lgr zerolog.Logger) error {
	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return seed.CreateDefaultData(ctx, appRepos.NewRepositories(tx), opts, lgr)
	})
}

// SetupCache connects to redis when enabled. Failure is not fatal: the catalog is then read from postgres.
func SetupCache(cfg *config.Config, lgr zerolog.Logger) *cache.Cache {
	if !cfg.Redis.Enabled {
		lgr.Info().Msg("Redis cache disabled")
		return nil
	}

	c, err := cache.NewCache(cache.Config{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		lgr.Warn().Err(err).Str("addr", cfg.GetRedisAddr()).Msg("Redis unavailable, continuing without catalog cache")
		return nil
	}

	lgr.Info().Str("addr", cfg.GetRedisAddr()).Msg("Redis cache connected")
	return c
}

// enrollmentTx binds student and account creation to one transaction
func enrollmentTx(database *db.PostgresDB) appServices.EnrollmentTx {
	return func(ctx context.Context, fn func(appServices.StudentStore, appServices.AccountStore) error) error {
		return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			return fn(appRepos.NewStudentRepository(tx), appRepos.NewAccountRepository(tx))
		})
	}
}

// BuildServices wires repositories and services. c may be nil.
func BuildServices(cfg *config.Config, database *db.PostgresDB, c *cache.Cache, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Database: database, Cache: c, Logger: lgr}
	deps.Repos = appRepos.NewRepositories(database.Pool)

	var courses appServices.CourseStore = deps.Repos.CourseRepository
	var edges appServices.PrerequisiteStore = deps.Repos.PrerequisiteRepository
	if c != nil {
		ttl := helpers.ParseDuration(cfg.Redis.CatalogTTL, 10*time.Minute)
		catalog := appServices.NewCachedCatalog(courses, edges, c, ttl, lgr)
		courses, edges = catalog.Courses(), catalog.Prerequisites()
	}

	deps.Hub = websocket.NewHub(lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.AccountRepository, deps.JWTService, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, enrollmentTx(database), lgr)
	deps.CatalogService = appServices.NewCatalogService(courses, edges, deps.Repos.SemesterRepository, lgr)
	deps.ResultService = appServices.NewResultService(
		deps.Repos.StudentRepository,
		courses,
		deps.Repos.SemesterRepository,
		deps.Repos.ResultRepository,
		deps.Hub,
		lgr,
	)
	deps.StandingService = appServices.NewStandingService(
		deps.Repos.StudentRepository,
		courses,
		deps.Repos.ResultRepository,
		edges,
		lgr,
	)
	deps.AdvisorService = appServices.NewAdvisorService(deps.StandingService, advisor.NewEngine(), cfg.Advisor.MaxQuestionBytes, lgr)

	return deps
}

// BuildDependencies initializes services and the HTTP layer on top of them.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, c *cache.Cache, lgr zerolog.Logger) (*Dependencies, error) {
	if err := validation.RegisterWithGin(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	deps := BuildServices(cfg, database, c, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.ResultService)
	deps.CourseController = appControllers.NewCourseController(deps.CatalogService)
	deps.ResultController = appControllers.NewResultController(deps.ResultService)
	deps.StandingController = appControllers.NewStandingController(deps.StandingService, deps.AdvisorService, lgr)
	if cfg.Advisor.WebSocketEnabled {
		deps.WebSocketHandler = websocket.NewHandler(deps.Hub, deps.AdvisorService, cfg.Advisor.MaxQuestionBytes, lgr)
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), appMiddleware.Recovery(), appMiddleware.RequireJSON())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, appRoutes.Handlers{
		Auth:      deps.AuthController,
		Students:  deps.StudentController,
		Courses:   deps.CourseController,
		Results:   deps.ResultController,
		Standing:  deps.StandingController,
		WebSocket: deps.WebSocketHandler,
		Health:    deps.Database.Ping,
	}, deps.AuthMiddleware)

	lgr.Info().Msg("Router setup complete.")
	return router
}
