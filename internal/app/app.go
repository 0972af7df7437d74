package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/taskearn/internal/config"
	"github.com/GlebRadaev/taskearn/internal/handlers"
	"github.com/GlebRadaev/taskearn/internal/pg"
	"github.com/GlebRadaev/taskearn/internal/repo"
	"github.com/GlebRadaev/taskearn/internal/repo/memrepo"
	"github.com/GlebRadaev/taskearn/internal/service"
	"github.com/GlebRadaev/taskearn/pkg/auth"
	"github.com/GlebRadaev/taskearn/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(cancel context.CancelFunc) error
}

const shutdownTimeout = 5 * time.Second

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	pool *pgxpool.Pool

	// group owns every long running component; the first one to fail cancels the rest.
	group *errgroup.Group
	ready bool
}

func New() *Application {
	return &Application{}
}

func (a *Application) Start(ctx context.Context) error {
	if a.cfg == nil {
		cfg, err := config.New()
		if err != nil {
			return fmt.Errorf("can't load config: %w", err)
		}
		a.cfg = cfg
	}
	if err := logger.InitLogger(a.cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if err := a.initStorage(ctx); err != nil {
		return err
	}
	a.srv = service.New(a.repo, a.cfg)
	a.api = handlers.New(a.srv, auth.NewJWTService(a.cfg.JWTSecret))

	var gctx context.Context
	a.group, gctx = errgroup.WithContext(ctx)
	a.serveHTTP(gctx)
	if err := a.startScheduler(gctx); err != nil {
		return fmt.Errorf("can't start activity scheduler: %w", err)
	}

	a.ready = true
	zap.L().Info("taskearn started",
		zap.String("storage", a.cfg.Storage),
		zap.String("address", a.cfg.Address),
		zap.String("activity_schedule", a.cfg.ActivitySchedule))
	return nil
}

func (a *Application) initStorage(ctx context.Context) error {
	if a.cfg.Storage == config.StorageMemory {
		zap.L().Warn("using in-memory storage, state is lost on exit")
		a.repo = repo.NewMemory(memrepo.New())
		return nil
	}

	pool, err := openPool(ctx, a.cfg.Database)
	if err != nil {
		zap.L().Error("open postgres pool failed", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool
	a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool))
	return nil
}

func openPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// serveHTTP runs the API until ctx is done, then drains in-flight requests.
func (a *Application) serveHTTP(ctx context.Context) {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := &http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.group.Go(func() error {
		zap.L().Info("http server listening", zap.String("address", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server exited with error: %w", err)
		}
		return nil
	})
	a.group.Go(func() error {
		<-ctx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		return nil
	})
}

func (a *Application) startScheduler(ctx context.Context) error {
	stop, err := a.srv.Runner.Start(ctx)
	if err != nil {
		return err
	}
	a.group.Go(func() error {
		<-ctx.Done()
		stop()
		zap.L().Info("activity scheduler stopped")
		return nil
	})
	return nil
}

// Wait blocks until every component has stopped and returns the first failure.
// cancel is called so a failing component also stops the caller's context.
func (a *Application) Wait(cancel context.CancelFunc) error {
	defer cancel()
	if a.group == nil {
		return nil
	}

	err := a.group.Wait()
	if a.pool != nil {
		a.pool.Close()
	}
	if err != nil {
		zap.L().Error("taskearn stopped with error", zap.Error(err))
	}
	return err
}
