package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powerprices/internal/domain"
	"powerprices/internal/service"
)

func date(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestHandleGetDayAheadSeries(t *testing.T) {
	t.Run("valid query returns series", func(t *testing.T) {
		var got service.DayAheadQuery
		svc := &mockPriceService{
			dayAheadFunc: func(_ context.Context, q service.DayAheadQuery) (*domain.Series[domain.PointsCurrency], error) {
				got = q
				s := domain.NewSeries("DE", domain.GranularityHourly, []domain.PointsCurrency{
					{Timestamp: q.Start, Price: decimal.RequireFromString("132.45"), Currency: "EUR"},
				})
				s.Unit = "EUR/MWh"
				s.Provider = domain.ProviderEnergyCharts
				return s, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/series/day_ahead?start=2022-01-01&end=2023-01-01&country=DE", nil)
		w := httptest.NewRecorder()
		HandleGetDayAheadSeries(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, date("2022-01-01"), got.Start)
		assert.Equal(t, date("2023-01-01"), got.End)
		assert.Equal(t, "DE", got.Country)
		assert.Equal(t, domain.GranularityHourly, got.Granularity)
		assert.Empty(t, got.Provider)

		body := decodeBody(t, w)
		assert.Equal(t, "DE", body["country"])
		assert.Equal(t, "HOURLY", body["granularity"])
		assert.Equal(t, "ENERGY_CHARTS", body["provider"])
		for _, absent := range []string{"model", "commodity", "run_date", "trading_date"} {
			assert.NotContains(t, body, absent)
		}
		points := body["points"].([]any)
		require.Len(t, points, 1)
		point := points[0].(map[string]any)
		assert.Equal(t, "2022-01-01T00:00:00Z", point["timestamp"])
		assert.Equal(t, "132.45", point["price"])
		assert.Equal(t, "EUR", point["currency"])
	})

	t.Run("explicit granularity and provider are forwarded", func(t *testing.T) {
		var got service.DayAheadQuery
		svc := &mockPriceService{
			dayAheadFunc: func(_ context.Context, q service.DayAheadQuery) (*domain.Series[domain.PointsCurrency], error) {
				got = q
				return domain.NewSeries("AT", q.Granularity, []domain.PointsCurrency{}), nil
			},
		}

		req := httptest.NewRequest(http.MethodGet,
			"/series/day_ahead?start=2024-01-01&end=2024-01-08&country=AT&granularity=DAILY&provider=AWATTAR", nil)
		w := httptest.NewRecorder()
		HandleGetDayAheadSeries(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.GranularityDaily, got.Granularity)
		assert.Equal(t, domain.ProviderAwattar, got.Provider)
		assert.Equal(t, []any{}, decodeBody(t, w)["points"])
	})

	badRequests := []struct {
		name    string
		query   string
		message string
	}{
		{"missing country", "start=2022-01-01&end=2023-01-01", "country is required"},
		{"missing start", "end=2023-01-01&country=DE", "start is required"},
		{"malformed end", "start=2022-01-01&end=2023/01/01&country=DE", "end must be a date"},
		{"unknown granularity", "start=2022-01-01&end=2023-01-01&country=DE&granularity=WEEKLY", "granularity"},
		{"unknown provider", "start=2022-01-01&end=2023-01-01&country=DE&provider=NORDPOOL", "provider"},
	}
	for _, tc := range badRequests {
		t.Run(tc.name+" returns 400", func(t *testing.T) {
			svc := &mockPriceService{
				dayAheadFunc: func(context.Context, service.DayAheadQuery) (*domain.Series[domain.PointsCurrency], error) {
					t.Fatal("service must not be called")
					return nil, nil
				},
			}

			req := httptest.NewRequest(http.MethodGet, "/series/day_ahead?"+tc.query, nil)
			w := httptest.NewRecorder()
			HandleGetDayAheadSeries(svc).ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Contains(t, resp.Error, tc.message)
		})
	}

	t.Run("every missing parameter is reported", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/series/day_ahead", nil)
		w := httptest.NewRecorder()
		HandleGetDayAheadSeries(&mockPriceService{}).ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "start is required; end is required; country is required", resp.Error)
	})

	serviceErrors := []struct {
		err    error
		status int
	}{
		{service.ErrUnsupportedCountry, http.StatusBadRequest},
		{service.ErrUnsupportedProvider, http.StatusBadRequest},
		{service.ErrInvalidRange, http.StatusBadRequest},
		{service.ErrRangeTooLarge, http.StatusBadRequest},
		{service.ErrProviderUnavailable, http.StatusBadGateway},
		{service.ErrInternal, http.StatusInternalServerError},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}
	for _, tc := range serviceErrors {
		t.Run(tc.err.Error(), func(t *testing.T) {
			svc := &mockPriceService{
				dayAheadFunc: func(context.Context, service.DayAheadQuery) (*domain.Series[domain.PointsCurrency], error) {
					return nil, tc.err
				},
			}

			req := httptest.NewRequest(http.MethodGet, "/series/day_ahead?start=2022-01-01&end=2023-01-01&country=XX", nil)
			w := httptest.NewRecorder()
			HandleGetDayAheadSeries(svc).ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
		})
	}

	t.Run("nil series without error returns 500", func(t *testing.T) {
		svc := &mockPriceService{
			dayAheadFunc: func(context.Context, service.DayAheadQuery) (*domain.Series[domain.PointsCurrency], error) {
				return nil, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/series/day_ahead?start=2022-01-01&end=2023-01-01&country=DE", nil)
		w := httptest.NewRecorder()
		HandleGetDayAheadSeries(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandleGetForecastSeries(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC) }

	t.Run("run_date defaults to the clock's date on every request", func(t *testing.T) {
		var runDates []time.Time
		svc := &mockPriceService{
			forecastFunc: func(_ context.Context, q service.ForecastQuery) (*domain.Series[domain.PointsCountry], error) {
				runDates = append(runDates, q.RunDate)
				s := domain.NewSeries(q.Country, q.Granularity, []domain.PointsCountry{
					{Timestamp: date("2024-03-06"), Price: decimal.RequireFromString("98.10"), Country: q.Country},
				})
				s.Model = q.Model
				s.RunDate = q.RunDate.Format(domain.DateLayout)
				return s, nil
			},
		}

		now := clock()
		handler := HandleGetForecastSeries(svc, func() time.Time { return now })

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/series/forecasts?country=DE&model=CENTRAL", nil))
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "2024-03-05", body["run_date"])
		assert.Equal(t, "CENTRAL", body["model"])
		assert.NotContains(t, body, "provider")

		now = now.Add(time.Hour)
		w = httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/series/forecasts?country=DE&model=CENTRAL", nil))
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, []time.Time{date("2024-03-05"), date("2024-03-06")}, runDates)
	})

	t.Run("explicit run_date and granularity are forwarded", func(t *testing.T) {
		var got service.ForecastQuery
		svc := &mockPriceService{
			forecastFunc: func(_ context.Context, q service.ForecastQuery) (*domain.Series[domain.PointsCountry], error) {
				got = q
				return domain.NewSeries(q.Country, q.Granularity, []domain.PointsCountry{}), nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/series/forecasts?country=FR&model=HIGH&run_date=2024-01-15&granularity=DAILY", nil)
		w := httptest.NewRecorder()
		HandleGetForecastSeries(svc, clock).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, service.ForecastQuery{
			Country:     "FR",
			Model:       domain.ModelHigh,
			RunDate:     date("2024-01-15"),
			Granularity: domain.GranularityDaily,
		}, got)
	})

	badRequests := []struct {
		name  string
		query string
	}{
		{"quarter hourly granularity", "country=DE&model=CENTRAL&granularity=QUARTER_HOURLY"},
		{"missing model", "country=DE"},
		{"unknown model", "country=DE&model=MEDIAN"},
		{"missing country", "model=LOW"},
		{"malformed run_date", "country=DE&model=LOW&run_date=yesterday"},
	}
	for _, tc := range badRequests {
		t.Run(tc.name+" returns 400", func(t *testing.T) {
			svc := &mockPriceService{
				forecastFunc: func(context.Context, service.ForecastQuery) (*domain.Series[domain.PointsCountry], error) {
					t.Fatal("service must not be called")
					return nil, nil
				},
			}

			w := httptest.NewRecorder()
			HandleGetForecastSeries(svc, clock).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/series/forecasts?"+tc.query, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	t.Run("missing run returns 404", func(t *testing.T) {
		svc := &mockPriceService{
			forecastFunc: func(context.Context, service.ForecastQuery) (*domain.Series[domain.PointsCountry], error) {
				return nil, service.ErrNotFound
			},
		}

		w := httptest.NewRecorder()
		HandleGetForecastSeries(svc, clock).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/series/forecasts?country=DE&model=CENTRAL", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleGetFuturesSettlements(t *testing.T) {
	t.Run("settlement curve is returned", func(t *testing.T) {
		var got service.SettlementQuery
		svc := &mockPriceService{
			settlementsFunc: func(_ context.Context, q service.SettlementQuery) (*domain.Series[domain.PointsCountry], error) {
				got = q
				s := domain.NewSeries(q.Country, "", []domain.PointsCountry{
					{Timestamp: date("2023-02-01"), Price: decimal.RequireFromString("155.2"), Country: q.Country},
				})
				s.Commodity = q.Commodity
				s.TradingDate = q.TradingDate.Format(domain.DateLayout)
				return s, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/futures/settlements?commodity=POWER&country=DE&trading_date=2023-01-01", nil)
		w := httptest.NewRecorder()
		HandleGetFuturesSettlements(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, service.SettlementQuery{
			Commodity:   domain.CommodityPower,
			Country:     "DE",
			TradingDate: date("2023-01-01"),
		}, got)
		body := decodeBody(t, w)
		assert.Equal(t, "POWER", body["commodity"])
		assert.Equal(t, "2023-01-01", body["trading_date"])
		assert.NotContains(t, body, "granularity")
	})

	t.Run("no settlement store returns 501", func(t *testing.T) {
		svc := &mockPriceService{
			settlementsFunc: func(context.Context, service.SettlementQuery) (*domain.Series[domain.PointsCountry], error) {
				return nil, service.ErrNotImplemented
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/futures/settlements?commodity=GAS&country=NL&trading_date=2023-01-01", nil)
		w := httptest.NewRecorder()
		HandleGetFuturesSettlements(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusNotImplemented, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Not implemented", resp.Error)
	})

	t.Run("missing trading_date returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/futures/settlements?commodity=POWER&country=DE", nil)
		w := httptest.NewRecorder()
		HandleGetFuturesSettlements(&mockPriceService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHandleReadyz(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	dbUp := pingerFunc(func(context.Context) error { return nil })
	dbDown := pingerFunc(func(context.Context) error { return errors.New("connection refused") })

	t.Run("all dependencies up", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleReadyz(dbUp, rdb, rdb).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ready", decodeBody(t, w)["status"])
	})

	t.Run("database down", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleReadyz(dbDown, rdb, rdb).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("redis down", func(t *testing.T) {
		down := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
		t.Cleanup(func() { _ = down.Close() })

		w := httptest.NewRecorder()
		HandleReadyz(dbUp, down, rdb).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Cache not ready", resp.Error)
	})
}
