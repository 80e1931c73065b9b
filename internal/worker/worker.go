// Package worker implements background task handlers for imports and cache warm-up.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"powerprices/internal/domain"
	"powerprices/internal/service"
)

// permanent reports whether retrying err cannot succeed.
func permanent(err error) bool {
	return errors.Is(err, service.ErrInvalidImport) ||
		errors.Is(err, service.ErrUnsupportedCountry) ||
		errors.Is(err, service.ErrNotImplemented) ||
		errors.Is(err, domain.ErrInvalidEnum) ||
		errors.Is(err, domain.ErrInvalidDate)
}

func skipRetry(err error) error {
	return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
}

// NewForecastImportHandler returns a function to handle forecast:import tasks.
func NewForecastImportHandler(svc service.PriceServiceInterface, logger *zap.SugaredLogger) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload ForecastImportPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Errorw("Invalid task payload", "type", t.Type(), "error", err)
			return skipRetry(err)
		}
		run, err := payload.Run()
		if err == nil {
			err = svc.ImportForecast(ctx, run)
		}
		if err != nil {
			logger.Errorw("Task processing failed", "type", t.Type(), "country", payload.Country, "model", payload.Model, "error", err)
			if permanent(err) {
				return skipRetry(err)
			}
			return err
		}

		logger.Infow("Task completed", "type", t.Type(), "country", payload.Country, "run_date", payload.RunDate)
		return nil
	}
}

// NewSettlementImportHandler returns a function to handle settlement:import tasks.
func NewSettlementImportHandler(svc service.PriceServiceInterface, logger *zap.SugaredLogger) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload SettlementImportPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Errorw("Invalid task payload", "type", t.Type(), "error", err)
			return skipRetry(err)
		}
		curve, err := payload.Curve()
		if err == nil {
			err = svc.ImportSettlements(ctx, curve)
		}
		if err != nil {
			logger.Errorw("Task processing failed", "type", t.Type(), "commodity", payload.Commodity, "country", payload.Country, "error", err)
			if permanent(err) {
				return skipRetry(err)
			}
			return err
		}

		logger.Infow("Task completed", "type", t.Type(), "country", payload.Country, "trading_date", payload.TradingDate)
		return nil
	}
}

// NewWarmDayAheadHandler returns a function to handle dayahead:warm tasks.
func NewWarmDayAheadHandler(
	svc service.PriceServiceInterface,
	countries []string,
	now func() time.Time,
	logger *zap.SugaredLogger,
) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload WarmDayAheadPayload
		if len(t.Payload()) > 0 {
			if err := json.Unmarshal(t.Payload(), &payload); err != nil {
				logger.Errorw("Invalid task payload", "type", t.Type(), "error", err)
				return skipRetry(err)
			}
		}

		day := domain.Today(now()).AddDate(0, 0, 1)
		if payload.Day != "" {
			d, err := domain.ParseDate(payload.Day)
			if err != nil {
				logger.Errorw("Invalid task payload", "type", t.Type(), "day", payload.Day, "error", err)
				return skipRetry(err)
			}
			day = d
		}
		targets := countries
		if len(payload.Countries) > 0 {
			targets = payload.Countries
		}

		if err := svc.WarmDayAhead(ctx, day, targets); err != nil {
			logger.Warnw("Day-ahead warm-up incomplete", "day", day.Format(domain.DateLayout), "error", err)
			return err
		}
		logger.Infow("Task completed", "type", t.Type(), "day", day.Format(domain.DateLayout), "countries", len(targets))
		return nil
	}
}

// NewServeMux registers every task handler on a fresh asynq.ServeMux.
func NewServeMux(
	svc service.PriceServiceInterface,
	warmCountries []string,
	now func() time.Time,
	logger *zap.SugaredLogger,
) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskTypeImportForecast, NewForecastImportHandler(svc, logger))
	mux.HandleFunc(TaskTypeImportSettlements, NewSettlementImportHandler(svc, logger))
	mux.HandleFunc(TaskTypeWarmDayAhead, NewWarmDayAheadHandler(svc, warmCountries, now, logger))
	return mux
}
