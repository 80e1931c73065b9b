package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"powerprices/internal/api"
	"powerprices/internal/api/middleware"
	"powerprices/internal/auth"
	"powerprices/internal/service"
)

// routerDeps is everything the HTTP surface needs.
type routerDeps struct {
	logger   *zap.SugaredLogger
	registry *prometheus.Registry
	// verifier guards the series and import routes; nil leaves them public.
	verifier   auth.Verifier
	prices     service.PriceServiceInterface
	imports    api.ImportEnqueuer
	now        func() time.Time
	db         api.Pinger
	cache      *redis.Client
	asynqRedis *redis.Client
	metrics    bool
	swagger    bool
	// monitor is mounted under monitorRoot when set.
	monitor     http.Handler
	monitorRoot string
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLoggingMiddleware(d.logger))
	r.Use(middleware.NewHTTPMetrics(d.registry).Middleware)
	r.Use(chimiddleware.Recoverer)

	r.Group(func(r chi.Router) {
		if d.verifier != nil {
			r.Use(middleware.Authenticate(d.verifier, d.logger))
		}

		r.Get("/series/day_ahead", api.HandleGetDayAheadSeries(d.prices))
		r.Get("/series/forecasts", api.HandleGetForecastSeries(d.prices, d.now))
		r.Get("/futures/settlements", api.HandleGetFuturesSettlements(d.prices))
		r.Post("/imports/forecasts", api.HandleImportForecast(d.imports, d.logger))
		r.Post("/imports/settlements", api.HandleImportSettlements(d.imports, d.logger))
	})

	r.Get("/healthz", api.HandleHealthz())
	r.Get("/readyz", api.HandleReadyz(d.db, d.cache, d.asynqRedis))

	if d.metrics {
		r.Handle("/metrics", promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{Registry: d.registry}))
	}

	if d.swagger {
		r.Get("/swagger/*", api.SwaggerUIHandler())
		r.Get("/openapi.json", api.OpenAPISpecHandler())
	}

	if d.monitor != nil {
		r.Handle(d.monitorRoot+"/*", d.monitor)
	}
	return r
}

func (app *App) initHTTP(priceService service.PriceServiceInterface, enqueuer api.ImportEnqueuer) {
	deps := routerDeps{
		logger:     app.logger,
		registry:   app.registry,
		prices:     priceService,
		imports:    enqueuer,
		now:        time.Now,
		db:         app.db,
		cache:      app.rdbCache,
		asynqRedis: app.rdbAsynq,
		metrics:    app.cfg.Server.ServeMetrics,
		swagger:    app.cfg.Server.ServeSwagger,
	}
	if app.cfg.Auth.Enabled {
		deps.verifier = auth.NewJWTVerifier(app.cfg.Auth.JWTSecret, app.cfg.Auth.Issuer, app.cfg.Auth.Audience)
	} else {
		app.logger.Warnw("Authentication disabled, series endpoints are public")
	}
	if app.asynqmon != nil {
		deps.monitor = app.asynqmon
		deps.monitorRoot = app.asynqmon.RootPath()
	}

	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           newRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
