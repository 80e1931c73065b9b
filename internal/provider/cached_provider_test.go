package provider

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"powerprices/internal/domain"
)

func TestCachedDayAheadProvider_DayAheadPrices(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	prices := &DayAheadPrices{
		Provider: domain.ProviderEnergyCharts,
		Unit:     "EUR/MWh",
		Points: []domain.PointsCurrency{
			{Timestamp: start, Price: decimal.RequireFromString("101.25"), Currency: "EUR"},
			{Timestamp: start.Add(time.Hour), Price: decimal.RequireFromString("99.5"), Currency: "EUR"},
		},
	}
	ttl := 10 * time.Second

	t.Run("cache miss then hit", func(t *testing.T) {
		mr.FlushAll()
		mockProv := new(MockProvider)
		mockProv.On("DayAheadPrices", mock.Anything, "DE", start, end).Return(prices, nil).Once()

		cachedProv := NewCachedDayAheadProvider(mockProv, rdb, ttl, "test_provider")

		// First call - cache miss
		res, err := cachedProv.DayAheadPrices(context.Background(), "DE", start, end)
		require.NoError(t, err)
		assert.Len(t, res.Points, 2)
		mockProv.AssertExpectations(t)

		// Second call - cache hit (MockProvider should NOT be called again because of .Once())
		res2, err := cachedProv.DayAheadPrices(context.Background(), "DE", start, end)
		require.NoError(t, err)
		require.Len(t, res2.Points, 2)
		assert.Equal(t, domain.ProviderEnergyCharts, res2.Provider)
		assert.True(t, res2.Points[0].Timestamp.Equal(start))
		assert.True(t, res2.Points[0].Price.Equal(decimal.RequireFromString("101.25")))
	})

	t.Run("provider error is not cached", func(t *testing.T) {
		mr.FlushAll()
		mockProv := new(MockProvider)
		mockProv.On("DayAheadPrices", mock.Anything, "DE", start, end).Return(nil, assert.AnError).Once()

		cachedProv := NewCachedDayAheadProvider(mockProv, rdb, ttl, "test_provider")

		_, err := cachedProv.DayAheadPrices(context.Background(), "DE", start, end)
		assert.Error(t, err)

		// Second call - provider should be called again
		mockProv.On("DayAheadPrices", mock.Anything, "DE", start, end).Return(prices, nil).Once()
		res, err := cachedProv.DayAheadPrices(context.Background(), "DE", start, end)
		assert.NoError(t, err)
		assert.Len(t, res.Points, 2)
		mockProv.AssertExpectations(t)
	})

	t.Run("empty result is not cached", func(t *testing.T) {
		mr.FlushAll()
		empty := &DayAheadPrices{Provider: domain.ProviderEnergyCharts}
		mockProv := new(MockProvider)
		mockProv.On("DayAheadPrices", mock.Anything, "DE", start, end).Return(empty, nil).Twice()

		cachedProv := NewCachedDayAheadProvider(mockProv, rdb, ttl, "test_provider")

		_, _ = cachedProv.DayAheadPrices(context.Background(), "DE", start, end)
		_, _ = cachedProv.DayAheadPrices(context.Background(), "DE", start, end)
		mockProv.AssertExpectations(t)
	})

	t.Run("cache expires", func(t *testing.T) {
		mr.FlushAll()
		mockProv := new(MockProvider)
		mockProv.On("DayAheadPrices", mock.Anything, "DE", start, end).Return(prices, nil).Once()

		cachedProv := NewCachedDayAheadProvider(mockProv, rdb, ttl, "test_provider")

		_, _ = cachedProv.DayAheadPrices(context.Background(), "DE", start, end)

		mr.FastForward(ttl + time.Second)

		// Second call - cache expired, should call provider again
		mockProv.On("DayAheadPrices", mock.Anything, "DE", start, end).Return(prices, nil).Once()
		_, err := cachedProv.DayAheadPrices(context.Background(), "DE", start, end)
		assert.NoError(t, err)
		mockProv.AssertExpectations(t)
	})

	t.Run("nil cache passes through", func(t *testing.T) {
		mockProv := new(MockProvider)
		mockProv.On("DayAheadPrices", mock.Anything, "DE", start, end).Return(prices, nil).Twice()
		mockProv.On("Supports", "DE").Return(true)

		cachedProv := NewCachedDayAheadProvider(mockProv, nil, ttl, "test_provider")
		assert.True(t, cachedProv.Supports("DE"))
		_, _ = cachedProv.DayAheadPrices(context.Background(), "DE", start, end)
		_, _ = cachedProv.DayAheadPrices(context.Background(), "DE", start, end)
		mockProv.AssertExpectations(t)
	})
}
