package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/mrlokans/buzzwords/internal/audit"
	"github.com/mrlokans/buzzwords/internal/auth"
	"github.com/mrlokans/buzzwords/internal/config"
	"github.com/mrlokans/buzzwords/internal/database"
	auditrepo "github.com/mrlokans/buzzwords/internal/database/audit"
	"github.com/mrlokans/buzzwords/internal/database/bookmarks"
	"github.com/mrlokans/buzzwords/internal/database/users"
	"github.com/mrlokans/buzzwords/internal/database/words"
	http_controllers "github.com/mrlokans/buzzwords/internal/http"
	"github.com/mrlokans/buzzwords/internal/logging"
	"github.com/mrlokans/buzzwords/internal/scheduler"
	"github.com/mrlokans/buzzwords/internal/services"
	"github.com/mrlokans/buzzwords/internal/tasks"
	"github.com/mrlokans/buzzwords/internal/validation"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App holds the long-lived resources of a running server.
type App struct {
	DB        *database.Database
	Audit     *audit.Service
	Tasks     *tasks.Client
	Scheduler *scheduler.MaintenanceScheduler
	Handler   http.Handler

	logger   *zap.Logger
	cancelBg context.CancelFunc
}

// Build opens the store and wires repositories, services and the router.
func Build(cfg *config.Config, version string, logger *zap.Logger) (*App, error) {
	db, err := database.NewDatabase(database.Options{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.URL,
		LogSQL: cfg.Database.LogSQL,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &App{DB: db, logger: logger}

	wordRepo := words.NewRepository(db.DB)
	userRepo := users.NewRepository(db.DB)
	bookmarkRepo := bookmarks.NewRepository(db.DB)

	if cfg.Audit.Enabled {
		app.Audit = audit.NewService(auditrepo.NewRepository(db.DB), logger)
	}

	validator := validation.New()
	routerCfg := http_controllers.RouterConfig{
		AuthService:        auth.NewService(userRepo, validator, cfg.Auth),
		WordService:        services.NewWordService(wordRepo, validator),
		BookmarkService:    services.NewBookmarkService(bookmarkRepo, wordRepo, cfg.Bookmarks),
		StatsService:       services.NewStatsService(wordRepo, userRepo, bookmarkRepo),
		AuditService:       app.Audit,
		AuditRetentionDays: cfg.Audit.RetentionDays,
		Database:           db,
		ReadOnly:           cfg.HTTP.ReadOnly,
		RequestTimeout:     cfg.HTTP.RequestTimeout,
		Version:            version,
		Logger:             logger,
	}

	if cfg.Tasks.Enabled {
		client, err := tasks.NewClient(cfg.Tasks.DatabasePath, tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}, logger)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to initialize task queue: %w", err)
		}
		client.Register(tasks.NewSweepOrphanBookmarksQueue(bookmarkRepo, app.Audit, logger))
		if app.Audit != nil {
			client.Register(tasks.NewCleanupAuditEventsQueue(app.Audit, logger))
		}
		app.Tasks = client
		routerCfg.TaskClient = client

		if cfg.Maintenance.Enabled {
			app.Scheduler = scheduler.NewMaintenanceScheduler(client, cfg.Maintenance, cfg.Audit, logger)
		}
	}

	app.Handler = NewHandler(http_controllers.NewRouter(routerCfg), cfg.HTTP)
	return app, nil
}

// NewHandler wraps the router with CORS.
func NewHandler(router http.Handler, cfg config.HTTP) http.Handler {
	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin", "X-Requested-With"},
		MaxAge:         86400,
	}).Handler(router)
}

// Start launches the task workers and the maintenance scheduler.
func (a *App) Start(ctx context.Context) error {
	ctx, a.cancelBg = context.WithCancel(ctx)
	if a.Tasks != nil {
		a.Tasks.Start(ctx)
	}
	if a.Scheduler != nil {
		if err := a.Scheduler.Start(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Shutdown stops background work and releases the store.
func (a *App) Shutdown(ctx context.Context) {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.Tasks != nil {
		a.Tasks.Stop(ctx)
	}
	if a.cancelBg != nil {
		a.cancelBg()
	}
	a.Audit.Wait()

	if a.Tasks != nil {
		if err := a.Tasks.Close(); err != nil {
			a.logger.Warn("error closing task client", zap.Error(err))
		}
	}
	if err := a.DB.Close(); err != nil {
		a.logger.Warn("error closing database", zap.Error(err))
	}
}

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts down
// within the configured timeout.
func Serve(handler http.Handler, cfg *config.Config, logger *zap.Logger, onShutdown ShutdownFunc) error {
	timeout := cfg.Global.ShutdownTimeout()

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if onShutdown != nil {
			onShutdown(context.Background())
		}
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		logger.Info("shutting down server", zap.String("signal", sig.String()), zap.Duration("timeout", timeout))
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	shutdownErr := srv.Shutdown(ctx)
	if onShutdown != nil {
		onShutdown(ctx)
	}
	if shutdownErr != nil {
		return fmt.Errorf("server shutdown: %w", shutdownErr)
	}

	logger.Info("server exited")
	return nil
}

// Run builds the application from cfg and serves it.
func Run(cfg *config.Config, version string) error {
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("starting buzzwords",
		zap.String("version", version),
		zap.String("database_driver", cfg.Database.Driver),
		zap.Bool("read_only", cfg.HTTP.ReadOnly),
		zap.Bool("tasks", cfg.Tasks.Enabled))

	app, err := Build(cfg, version, logger)
	if err != nil {
		return err
	}
	if err := app.Start(context.Background()); err != nil {
		app.Shutdown(context.Background())
		return err
	}

	return Serve(app.Handler, cfg, logger, app.Shutdown)
}
