package worker

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"powerprices/internal/domain"
	"powerprices/internal/repository"
	"powerprices/internal/service"
)

type MockPriceService struct {
	mock.Mock
}

var _ service.PriceServiceInterface = (*MockPriceService)(nil)

func (m *MockPriceService) SeriesDayAheadPrice(ctx context.Context, q service.DayAheadQuery) (*domain.Series[domain.PointsCurrency], error) {
	args := m.Called(ctx, q)
	s, _ := args.Get(0).(*domain.Series[domain.PointsCurrency])
	return s, args.Error(1)
}

func (m *MockPriceService) SeriesGetupPrices(ctx context.Context, q service.ForecastQuery) (*domain.Series[domain.PointsCountry], error) {
	args := m.Called(ctx, q)
	s, _ := args.Get(0).(*domain.Series[domain.PointsCountry])
	return s, args.Error(1)
}

func (m *MockPriceService) FuturesSettlementPrices(ctx context.Context, q service.SettlementQuery) (*domain.Series[domain.PointsCountry], error) {
	args := m.Called(ctx, q)
	s, _ := args.Get(0).(*domain.Series[domain.PointsCountry])
	return s, args.Error(1)
}

func (m *MockPriceService) ImportForecast(ctx context.Context, run repository.ForecastRun) error {
	return m.Called(ctx, run).Error(0)
}

func (m *MockPriceService) ImportSettlements(ctx context.Context, curve repository.SettlementCurve) error {
	return m.Called(ctx, curve).Error(0)
}

func (m *MockPriceService) WarmDayAhead(ctx context.Context, day time.Time, countries []string) error {
	return m.Called(ctx, day, countries).Error(0)
}
