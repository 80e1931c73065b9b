package api

import (
	"context"
	"time"

	"powerprices/internal/domain"
	"powerprices/internal/repository"
	"powerprices/internal/service"
	"powerprices/internal/worker"
)

// mockPriceService implements service.PriceServiceInterface for testing.
type mockPriceService struct {
	dayAheadFunc    func(ctx context.Context, q service.DayAheadQuery) (*domain.Series[domain.PointsCurrency], error)
	forecastFunc    func(ctx context.Context, q service.ForecastQuery) (*domain.Series[domain.PointsCountry], error)
	settlementsFunc func(ctx context.Context, q service.SettlementQuery) (*domain.Series[domain.PointsCountry], error)
}

var _ service.PriceServiceInterface = (*mockPriceService)(nil)

func (m *mockPriceService) SeriesDayAheadPrice(ctx context.Context, q service.DayAheadQuery) (*domain.Series[domain.PointsCurrency], error) {
	return m.dayAheadFunc(ctx, q)
}

func (m *mockPriceService) SeriesGetupPrices(ctx context.Context, q service.ForecastQuery) (*domain.Series[domain.PointsCountry], error) {
	return m.forecastFunc(ctx, q)
}

func (m *mockPriceService) FuturesSettlementPrices(ctx context.Context, q service.SettlementQuery) (*domain.Series[domain.PointsCountry], error) {
	return m.settlementsFunc(ctx, q)
}

func (m *mockPriceService) ImportForecast(_ context.Context, _ repository.ForecastRun) error {
	return nil // Not used in handler tests
}

func (m *mockPriceService) ImportSettlements(_ context.Context, _ repository.SettlementCurve) error {
	return nil // Not used in handler tests
}

func (m *mockPriceService) WarmDayAhead(_ context.Context, _ time.Time, _ []string) error {
	return nil // Not used in handler tests
}

// mockEnqueuer implements ImportEnqueuer for testing.
type mockEnqueuer struct {
	forecasts   []worker.ForecastImportPayload
	settlements []worker.SettlementImportPayload
	err         error
}

func (m *mockEnqueuer) EnqueueForecastImport(_ context.Context, payload worker.ForecastImportPayload) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.forecasts = append(m.forecasts, payload)
	return "task-1", nil
}

func (m *mockEnqueuer) EnqueueSettlementImport(_ context.Context, payload worker.SettlementImportPayload) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.settlements = append(m.settlements, payload)
	return "task-2", nil
}
