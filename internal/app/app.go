package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/habits-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/habits-backend/internal/adapter/postgres/audit"
	categoryrepo "github.com/heartmarshall/habits-backend/internal/adapter/postgres/category"
	completionrepo "github.com/heartmarshall/habits-backend/internal/adapter/postgres/completion"
	habitrepo "github.com/heartmarshall/habits-backend/internal/adapter/postgres/habit"
	userrepo "github.com/heartmarshall/habits-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/habits-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/habits-backend/internal/auth"
	"github.com/heartmarshall/habits-backend/internal/config"
	authsvc "github.com/heartmarshall/habits-backend/internal/service/auth"
	categorysvc "github.com/heartmarshall/habits-backend/internal/service/category"
	habitsvc "github.com/heartmarshall/habits-backend/internal/service/habit"
	"github.com/heartmarshall/habits-backend/internal/transport/dataloader"
	"github.com/heartmarshall/habits-backend/internal/transport/middleware"
	"github.com/heartmarshall/habits-backend/internal/transport/rest"
	"github.com/heartmarshall/habits-backend/migrations"
)

// App holds the wired dependencies shared by the server and the
// maintenance commands.
type App struct {
	cfg  *config.Config
	log  *slog.Logger
	pool *pgxpool.Pool

	Auth     *authsvc.Service
	Category *categorysvc.Service
	Habit    *habitsvc.Service

	loaderRepos *dataloader.Repos
}

// New connects to the database and builds repositories and services.
// Close must be called to release the pool.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	users := userrepo.New(pool)
	categories := categoryrepo.New(pool)
	habits := habitrepo.New(pool)
	logs := completionrepo.New(pool)
	audit := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	verifier, err := google.NewVerifier(ctx, cfg.Auth.GoogleClientID, cfg.Auth.GoogleTimeout, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &App{
		cfg:  cfg,
		log:  logger,
		pool: pool,

		Auth:     authsvc.NewService(logger, users, tx, verifier, jwt, cfg.Auth, cfg.Quota),
		Category: categorysvc.NewService(logger, categories, users, audit, tx),
		Habit:    habitsvc.NewService(logger, habits, categories, logs, users, audit, tx),

		loaderRepos: &dataloader.Repos{Category: categories, Log: logs},
	}, nil
}

// Close releases the database pool.
func (a *App) Close() {
	a.pool.Close()
}

// Migrator returns a goose migrator over the embedded migrations. The
// caller closes it.
func (a *App) Migrator() (*postgres.Migrator, error) {
	return postgres.NewMigrator(a.pool, migrations.FS, a.log)
}

// Migrate applies all pending migrations.
func (a *App) Migrate(ctx context.Context) error {
	m, err := a.Migrator()
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up(ctx)
}

// Handler builds the HTTP handler with the full middleware chain.
func (a *App) Handler() http.Handler {
	router := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(a.Auth, a.log),
		Category: rest.NewCategoryHandler(a.Category, a.log),
		Habit:    rest.NewHabitHandler(a.Habit, a.log),
		Health:   rest.NewHealthHandler(a.pool, BuildVersion()),
	}, middleware.Auth(a.Auth), dataloader.Middleware(a.loaderRepos))

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.CORS),
		middleware.Timezone,
	)(router)
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.cfg.Server.Addr(),
		Handler:      a.Handler(),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		a.log.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Open loads configuration from the environment, sets up logging and
// connects the application.
func Open(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	return New(ctx, cfg, logger)
}

// Run serves HTTP until ctx is cancelled, applying migrations first when
// the server is configured to.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Server.MigrateOnStart {
		if err := a.Migrate(ctx); err != nil {
			return err
		}
	}
	return a.Serve(ctx)
}
