//go:build integration

package integration

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"powerprices/internal/config"
	"powerprices/internal/domain"
	"powerprices/internal/provider"
	"powerprices/internal/repository"
	"powerprices/internal/service"
)

func newPriceService(providers *provider.Registry) *service.PriceService {
	if providers == nil {
		providers = provider.NewRegistry()
	}
	return service.NewPriceService(
		providers,
		repository.NewPostgresForecastRepository(testDB),
		repository.NewPostgresSettlementRepository(testDB),
		service.NewValidator(),
		zap.NewNop().Sugar(),
		config.SeriesConfig{MaxRangeDays: 400},
	)
}

func TestImportForecast_ThenDailySeries(t *testing.T) {
	resetTestData(t)
	ctx := testContext(t)
	svc := newPriceService(nil)

	// two full days of hourly prices: day one 0..23, day two 24..47
	run := repository.ForecastRun{
		Country: "de",
		Model:   domain.ModelCentral,
		RunDate: day(t, "2024-03-01"),
		Points:  hourlyPoints(day(t, "2024-03-02"), 48, 0),
	}
	if err := svc.ImportForecast(ctx, run); err != nil {
		t.Fatalf("ImportForecast: %v", err)
	}

	series, err := svc.SeriesGetupPrices(ctx, service.ForecastQuery{
		Country:     "DE",
		Model:       domain.ModelCentral,
		RunDate:     day(t, "2024-03-01"),
		Granularity: domain.GranularityDaily,
	})
	if err != nil {
		t.Fatalf("SeriesGetupPrices: %v", err)
	}
	if len(series.Points) != 2 {
		t.Fatalf("expected 2 daily points, got %d", len(series.Points))
	}
	if !series.Points[0].Price.Equal(decimal.RequireFromString("11.5")) ||
		!series.Points[1].Price.Equal(decimal.RequireFromString("35.5")) {
		t.Fatalf("unexpected daily averages: %s, %s", series.Points[0].Price, series.Points[1].Price)
	}
	if series.RunDate != "2024-03-01" || series.Unit != "EUR/MWh" {
		t.Fatalf("unexpected series header: %+v", series)
	}
}

func TestSeriesGetupPrices_UnknownRun(t *testing.T) {
	resetTestData(t)
	ctx := testContext(t)

	_, err := newPriceService(nil).SeriesGetupPrices(ctx, service.ForecastQuery{
		Country: "DE", Model: domain.ModelHigh, RunDate: day(t, "2024-03-01"), Granularity: domain.GranularityHourly,
	})
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestImportSettlements_ThenCurve(t *testing.T) {
	resetTestData(t)
	ctx := testContext(t)
	svc := newPriceService(nil)

	err := svc.ImportSettlements(ctx, repository.SettlementCurve{
		Commodity:   domain.CommodityGas,
		Country:     "NL",
		TradingDate: day(t, "2023-01-02"),
		Points: []domain.PointsCountry{
			{Timestamp: day(t, "2023-02-01"), Price: decimal.RequireFromString("65.40")},
			{Timestamp: day(t, "2023-04-01"), Price: decimal.RequireFromString("60.05")},
		},
	})
	if err != nil {
		t.Fatalf("ImportSettlements: %v", err)
	}

	series, err := svc.FuturesSettlementPrices(ctx, service.SettlementQuery{
		Commodity: domain.CommodityGas, Country: "NL", TradingDate: day(t, "2023-01-02"),
	})
	if err != nil {
		t.Fatalf("FuturesSettlementPrices: %v", err)
	}
	if len(series.Points) != 2 || series.Commodity != domain.CommodityGas || series.TradingDate != "2023-01-02" {
		t.Fatalf("unexpected settlement series: %+v", series)
	}
	if series.Points[0].Country != "NL" {
		t.Fatalf("expected points tagged NL, got %q", series.Points[0].Country)
	}
}
