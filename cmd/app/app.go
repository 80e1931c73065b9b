// Package main is the entry point for the power price series service.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"powerprices/internal/config"
	"powerprices/internal/domain"
	"powerprices/internal/provider"
	"powerprices/internal/repository"
	"powerprices/internal/service"
	"powerprices/internal/worker"
)

// App holds all application dependencies and manages their lifecycle.
type App struct {
	cfg            *config.Config
	logger         *zap.SugaredLogger
	db             *sql.DB
	rdbCache       *redis.Client
	rdbAsynq       *redis.Client
	asynqClient    *asynq.Client
	asynqServer    *asynq.Server
	asynqMux       *asynq.ServeMux
	asynqScheduler *asynq.Scheduler
	asynqmon       *asynqmon.HTTPHandler
	registry       *prometheus.Registry
	httpServer     *http.Server
}

// NewApp initializes all dependencies and returns a ready-to-run App.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	app := &App{
		cfg:    cfg,
		logger: logger,
	}

	if err := app.initStorage(); err != nil {
		_ = app.close()
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.close()
		return nil, err
	}

	return app, nil
}

// close releases database and Redis connections
func (app *App) close() error {
	var errs []error
	if app.asynqmon != nil {
		if err := app.asynqmon.Close(); err != nil {
			errs = append(errs, fmt.Errorf("asynqmon close: %w", err))
		}
	}
	if app.asynqClient != nil {
		if err := app.asynqClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("asynq client close: %w", err))
		}
	}
	if app.rdbAsynq != nil {
		if err := app.rdbAsynq.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis asynq close: %w", err))
		}
	}
	if app.rdbCache != nil {
		if err := app.rdbCache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis cache close: %w", err))
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("db close: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (app *App) initStorage() error {
	db, err := repository.NewPostgresDB(&app.cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to Postgres: %w", err)
	}
	app.db = db

	if err := repository.RunMigrations(app.db, app.logger); err != nil {
		return fmt.Errorf("run DB migrations: %w", err)
	}

	app.rdbCache = redis.NewClient(&redis.Options{
		Addr: app.cfg.Redis.CacheAddr,
	})
	if err := app.rdbCache.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("connect to Redis (cache, %s): %w", app.cfg.Redis.CacheAddr, err)
	}
	app.logger.Infow("Connected to Redis cache", "addr", app.cfg.Redis.CacheAddr)

	return nil
}

func (app *App) initServices() error {
	redisOpt := asynq.RedisClientOpt{Addr: app.cfg.Redis.AsynqAddr}
	taskTimeout := time.Duration(app.cfg.Worker.TimeoutSec) * time.Second

	app.rdbAsynq = redis.NewClient(&redis.Options{Addr: app.cfg.Redis.AsynqAddr})
	app.asynqClient = asynq.NewClient(redisOpt)
	app.asynqServer = asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency:              app.cfg.Worker.Concurrency,
			DelayedTaskCheckInterval: time.Duration(app.cfg.Worker.CheckIntervalSec) * time.Second,
			TaskCheckInterval:        time.Duration(app.cfg.Worker.CheckIntervalSec) * time.Second,
		},
	)
	app.asynqScheduler = asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{Location: time.UTC})
	app.logger.Infow("Asynq configured", "addr", app.cfg.Redis.AsynqAddr)

	providers, err := newProviderRegistry(app.cfg, app.rdbCache)
	if err != nil {
		return err
	}
	priceService := service.NewPriceService(
		providers,
		repository.NewPostgresForecastRepository(app.db),
		repository.NewPostgresSettlementRepository(app.db),
		service.NewValidator(),
		app.logger,
		app.cfg.Series,
	)
	enqueuer := worker.NewAsynqEnqueuer(app.asynqClient, app.cfg.Worker.MaxRetry, taskTimeout)

	app.asynqMux = worker.NewServeMux(priceService, app.cfg.Worker.WarmCountries, time.Now, app.logger)
	if app.cfg.Worker.WarmCron != "" {
		entryID, err := worker.RegisterWarmUp(app.asynqScheduler, app.cfg.Worker.WarmCron, app.cfg.Worker.MaxRetry, taskTimeout)
		if err != nil {
			return err
		}
		app.logger.Infow("Day-ahead warm-up scheduled", "cron", app.cfg.Worker.WarmCron, "entry_id", entryID,
			"countries", app.cfg.Worker.WarmCountries)
	}

	if app.cfg.Server.ServeAsynqmon {
		app.asynqmon = asynqmon.New(asynqmon.Options{
			RootPath:     "/monitoring",
			RedisConnOpt: redisOpt,
		})
	}

	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(app.db, "powerprices"),
	)

	app.initHTTP(priceService, enqueuer)
	return nil
}

// newProviderRegistry registers every configured day-ahead source behind the Redis cache.
func newProviderRegistry(cfg *config.Config, cache *redis.Client) (*provider.Registry, error) {
	ttl := time.Duration(cfg.Cache.ProviderSeriesTTLSec) * time.Second
	registry := provider.NewRegistry()

	if cfg.EnergyCharts.BaseURL != "" {
		p := provider.NewEnergyChartsProvider(cfg.EnergyCharts.BaseURL, cfg.EnergyCharts.Timeout)
		registry.Register(domain.ProviderEnergyCharts, provider.NewCachedDayAheadProvider(p, cache, ttl, "energy_charts"))
	}

	if cfg.Awattar.BaseURLDE != "" || cfg.Awattar.BaseURLAT != "" {
		p := provider.NewAwattarProvider(cfg.Awattar.BaseURLDE, cfg.Awattar.BaseURLAT, cfg.Awattar.Timeout)
		registry.Register(domain.ProviderAwattar, provider.NewCachedDayAheadProvider(p, cache, ttl, "awattar"))
	}

	if registry.Len() == 0 {
		return nil, fmt.Errorf("no day-ahead providers are configured: " +
			"set energy_charts.base_url or awattar.base_url_de/base_url_at")
	}
	return registry, nil
}

// Run starts the HTTP server, the Asynq worker and the scheduler, blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Infow("Starting Asynq worker server")
		if err := app.asynqServer.Start(app.asynqMux); err != nil {
			return fmt.Errorf("asynq worker failed to start: %w", err)
		}

		<-ctx.Done()
		return nil
	})

	g.Go(func() error {
		app.logger.Infow("Starting Asynq scheduler")
		if err := app.asynqScheduler.Start(); err != nil {
			return fmt.Errorf("asynq scheduler failed to start: %w", err)
		}

		<-ctx.Done()
		return nil
	})

	g.Go(func() error {
		app.logger.Infow("HTTP server listening", "port", app.cfg.Server.Port)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown: triggered by context cancellation (signal or component failure).
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

// shutdown performs ordered teardown: HTTP server -> scheduler -> Asynq worker -> connections.
// In-flight tasks finish before the DB and Redis connections close.
func (app *App) shutdown() error {
	app.logger.Infow("Shutting down server...")

	var errs []error

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 1. Stop accepting new HTTP requests, drain in-flight
	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}

	// 2. Stop enqueuing scheduled tasks
	app.asynqScheduler.Shutdown()

	// 3. Drain in-flight Asynq tasks
	app.asynqServer.Shutdown()

	// 4. Close connections (asynq client, Redis, database)
	if err := app.close(); err != nil {
		app.logger.Errorw("Connection cleanup errors", "error", err)
		errs = append(errs, err)
	}

	app.logger.Infow("Shutdown complete")
	return errors.Join(errs...)
}
