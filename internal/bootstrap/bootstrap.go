package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yigit/schooldash/internal/apiclient"
	appControllers "github.com/yigit/schooldash/internal/app/controllers"
	appMigrations "github.com/yigit/schooldash/internal/app/migrations"
	appRoutes "github.com/yigit/schooldash/internal/app/routes"
	"github.com/yigit/schooldash/internal/app/views"
	"github.com/yigit/schooldash/internal/config"
	"github.com/yigit/schooldash/internal/db"
	appMiddleware "github.com/yigit/schooldash/internal/middleware"
	"github.com/yigit/schooldash/internal/navigation"
	"github.com/yigit/schooldash/internal/pkg/helpers"
	"github.com/yigit/schooldash/internal/pkg/logger"
	"github.com/yigit/schooldash/internal/session"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	API         *apiclient.Client
	Sessions    *session.Manager
	Guard       *session.SubmissionGuard
	Gate        *navigation.Gate
	Renderer    *views.Renderer
	Controllers appRoutes.Controllers
	Registry    *prometheus.Registry
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
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

// SetupDatabase connects to PostgreSQL and applies the embedded migrations. It is
// only called when sessions are stored in the database.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if err := RunMigrations(ctx, database, lgr); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// RunMigrations applies every pending migration.
func RunMigrations(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, logger.Component("migrations"))
	if err := migrator.Migrate(ctx, appMigrations.Files()); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies wires the API client, session layer, views and controllers.
// database may be nil when the memory session store is configured.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Registry: prometheus.NewRegistry()}
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps.API = apiclient.New(
		cfg.API.BaseURL,
		helpers.ParseDuration(cfg.API.Timeout, 15*time.Second),
		apiclient.WithMetrics(apiclient.NewMetrics(deps.Registry)),
	)

	var store session.Store
	switch cfg.Session.Store {
	case config.SessionStorePostgres:
		if database == nil {
			return nil, fmt.Errorf("postgres session store configured without a database")
		}
		store = session.NewPostgresStore(database.Pool)
	default:
		store = session.NewMemoryStore()
	}
	lgr.Info().Str("store", cfg.Session.Store).Msg("Session store selected")

	deps.Sessions = session.NewManager(store, deps.API, session.Options{
		CookieName: cfg.Session.CookieName,
		TTL:        helpers.ParseDuration(cfg.Session.TTL, 12*time.Hour),
		FlashTTL:   helpers.ParseDuration(cfg.UI.FlashTTL, 3*time.Second),
		Secure:     cfg.Session.Secure,
	})
	deps.Guard = session.NewSubmissionGuard()
	deps.Gate = navigation.DefaultGate()

	renderer, err := views.New()
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to parse templates")
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	deps.Renderer = renderer

	deps.Controllers = appRoutes.NewControllers(appControllers.Deps{
		Sessions: deps.Sessions,
		Guard:    deps.Guard,
		Log:      logger.Component("controllers"),
		PageSize: cfg.UI.PageSize,
	})
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
	router.Use(appMiddleware.Recovery(lgr), appMiddleware.RequestLogger(logger.Component("http")))
	router.HTMLRender = deps.Renderer

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	appRoutes.SetupRouter(router, deps.Sessions, deps.Gate, deps.Controllers)
	return router
}
