// Package service implements the price series use-cases.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"powerprices/internal/config"
	"powerprices/internal/domain"
	"powerprices/internal/provider"
	"powerprices/internal/repository"
)

// forecastUnit is the unit forecasts and settlements are stored in.
const forecastUnit = "EUR/MWh"

// PriceServiceInterface defines the operations available for price series.
type PriceServiceInterface interface {
	SeriesDayAheadPrice(ctx context.Context, q DayAheadQuery) (*domain.Series[domain.PointsCurrency], error)
	SeriesGetupPrices(ctx context.Context, q ForecastQuery) (*domain.Series[domain.PointsCountry], error)
	FuturesSettlementPrices(ctx context.Context, q SettlementQuery) (*domain.Series[domain.PointsCountry], error)
	ImportForecast(ctx context.Context, run repository.ForecastRun) error
	ImportSettlements(ctx context.Context, curve repository.SettlementCurve) error
	WarmDayAhead(ctx context.Context, day time.Time, countries []string) error
}

// PriceService defines business logic for price series
type PriceService struct {
	providers   *provider.Registry
	forecasts   repository.ForecastRepository
	settlements repository.SettlementRepository
	validator   Validator
	log         *zap.SugaredLogger
	maxRange    time.Duration
}

// NewPriceService creates a new PriceService. A nil settlements repository
// makes FuturesSettlementPrices answer ErrNotImplemented.
func NewPriceService(
	providers *provider.Registry,
	forecasts repository.ForecastRepository,
	settlements repository.SettlementRepository,
	validator Validator,
	logger *zap.SugaredLogger,
	seriesCfg config.SeriesConfig,
) *PriceService {
	return &PriceService{
		providers:   providers,
		forecasts:   forecasts,
		settlements: settlements,
		validator:   validator,
		log:         logger,
		maxRange:    time.Duration(seriesCfg.MaxRangeDays) * 24 * time.Hour,
	}
}

// SeriesDayAheadPrice returns day-ahead auction prices in [q.Start, q.End) at the requested granularity.
func (s *PriceService) SeriesDayAheadPrice(ctx context.Context, q DayAheadQuery) (*domain.Series[domain.PointsCurrency], error) {
	country, err := s.normalizeCountry(q.Country)
	if err != nil {
		return nil, err
	}
	if !q.Start.Before(q.End) {
		return nil, ErrInvalidRange
	}
	if s.maxRange > 0 && q.End.Sub(q.Start) > s.maxRange {
		return nil, ErrRangeTooLarge
	}
	granularity := q.Granularity
	if granularity == "" {
		granularity = domain.GranularityHourly
	}

	prov, err := s.dayAheadProvider(country, q.Provider)
	if err != nil {
		return nil, err
	}

	res, err := prov.DayAheadPrices(ctx, country, q.Start, q.End)
	if err != nil {
		s.log.Errorw("Day-ahead provider error", "country", country, "provider", q.Provider, "error", err)
		return nil, ErrProviderUnavailable
	}

	points := domain.Resample(domain.Clip(res.Points, q.Start, q.End), granularity)
	series := domain.NewSeries(country, granularity, points)
	series.Unit = res.Unit
	series.Provider = res.Provider
	return series, nil
}

// SeriesGetupPrices returns a stored forecast run at daily or hourly granularity.
func (s *PriceService) SeriesGetupPrices(ctx context.Context, q ForecastQuery) (*domain.Series[domain.PointsCountry], error) {
	country, err := s.normalizeCountry(q.Country)
	if err != nil {
		return nil, err
	}
	granularity := q.Granularity
	if granularity == "" {
		granularity = domain.GranularityHourly
	}
	if granularity != domain.GranularityHourly && granularity != domain.GranularityDaily {
		return nil, ErrInvalidGranularity
	}

	points, err := s.forecasts.GetForecast(ctx, country, q.Model, q.RunDate)
	if err != nil {
		s.log.Errorw("DB error fetching forecast", "country", country, "model", q.Model, "error", err)
		return nil, ErrInternal
	}
	if len(points) == 0 {
		return nil, ErrNotFound
	}

	series := domain.NewSeries(country, granularity, domain.Resample(points, granularity))
	series.Unit = forecastUnit
	series.Model = q.Model
	series.RunDate = q.RunDate.Format(domain.DateLayout)
	return series, nil
}

// FuturesSettlementPrices returns the settlement curve of a trading date, keyed by delivery start.
func (s *PriceService) FuturesSettlementPrices(ctx context.Context, q SettlementQuery) (*domain.Series[domain.PointsCountry], error) {
	if s.settlements == nil {
		return nil, ErrNotImplemented
	}
	country, err := s.normalizeCountry(q.Country)
	if err != nil {
		return nil, err
	}

	points, err := s.settlements.GetSettlements(ctx, q.Commodity, country, q.TradingDate)
	if err != nil {
		s.log.Errorw("DB error fetching settlements", "commodity", q.Commodity, "country", country, "error", err)
		return nil, ErrInternal
	}
	if len(points) == 0 {
		return nil, ErrNotFound
	}

	// delivery periods are contract dependent, the curve has no fixed granularity
	series := domain.NewSeries(country, "", points)
	series.Unit = forecastUnit
	series.Commodity = q.Commodity
	series.TradingDate = q.TradingDate.Format(domain.DateLayout)
	return series, nil
}

// ImportForecast validates and stores a forecast run (called by background worker).
func (s *PriceService) ImportForecast(ctx context.Context, run repository.ForecastRun) error {
	country, err := s.normalizeCountry(run.Country)
	if err != nil {
		return err
	}
	if run.Model == "" || run.RunDate.IsZero() || len(run.Points) == 0 {
		return fmt.Errorf("%w: forecast needs model, run date and points", ErrInvalidImport)
	}

	run.Country = country
	run.RunDate = domain.Today(run.RunDate)
	run.Points = withCountry(domain.NewSeries(country, "", run.Points).Points, country)

	if err := s.forecasts.UpsertForecast(ctx, run); err != nil {
		s.log.Errorw("DB error storing forecast", "country", country, "model", run.Model, "error", err)
		return err
	}
	s.log.Infow("Forecast imported", "country", country, "model", run.Model,
		"run_date", run.RunDate.Format(domain.DateLayout), "points", len(run.Points))
	return nil
}

// ImportSettlements validates and stores a settlement curve (called by background worker).
func (s *PriceService) ImportSettlements(ctx context.Context, curve repository.SettlementCurve) error {
	if s.settlements == nil {
		return ErrNotImplemented
	}
	country, err := s.normalizeCountry(curve.Country)
	if err != nil {
		return err
	}
	if curve.Commodity == "" || curve.TradingDate.IsZero() || len(curve.Points) == 0 {
		return fmt.Errorf("%w: settlement needs commodity, trading date and points", ErrInvalidImport)
	}

	curve.Country = country
	curve.TradingDate = domain.Today(curve.TradingDate)
	curve.Points = withCountry(domain.NewSeries(country, "", curve.Points).Points, country)

	if err := s.settlements.UpsertSettlements(ctx, curve); err != nil {
		s.log.Errorw("DB error storing settlements", "commodity", curve.Commodity, "country", country, "error", err)
		return err
	}
	s.log.Infow("Settlements imported", "commodity", curve.Commodity, "country", country,
		"trading_date", curve.TradingDate.Format(domain.DateLayout), "points", len(curve.Points))
	return nil
}

// WarmDayAhead loads the day-ahead prices of day for every country so later reads hit the provider cache.
func (s *PriceService) WarmDayAhead(ctx context.Context, day time.Time, countries []string) error {
	start := domain.Today(day)
	end := start.Add(24 * time.Hour)

	var errs []error
	for _, country := range countries {
		series, err := s.SeriesDayAheadPrice(ctx, DayAheadQuery{
			Start:       start,
			End:         end,
			Country:     country,
			Granularity: domain.GranularityHourly,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("warm %s: %w", country, err))
			continue
		}
		s.log.Infow("Day-ahead cache warmed", "country", country, "day", start.Format(domain.DateLayout), "points", len(series.Points))
	}
	return errors.Join(errs...)
}

func (s *PriceService) normalizeCountry(country string) (string, error) {
	country = strings.ToUpper(strings.TrimSpace(country))
	if err := s.validator.Validate(country); err != nil {
		return "", err
	}
	return country, nil
}

func (s *PriceService) dayAheadProvider(country string, name domain.ProviderName) (provider.DayAheadProvider, error) {
	if name != "" {
		p, ok := s.providers.Get(name)
		if !ok || !p.Supports(country) {
			return nil, ErrUnsupportedProvider
		}
		return p, nil
	}
	p := s.providers.Chain(country)
	if p == nil {
		s.log.Warnw("No provider configured for country", "country", country)
		return nil, ErrProviderUnavailable
	}
	return p, nil
}

func withCountry(points []domain.PointsCountry, country string) []domain.PointsCountry {
	for i := range points {
		points[i].Country = country
	}
	return points
}
