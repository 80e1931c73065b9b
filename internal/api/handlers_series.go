package api

import (
	"net/http"
	"time"

	"powerprices/internal/domain"
	"powerprices/internal/service"
)

// DayAheadSeriesResponse documents the day-ahead series body.
type DayAheadSeriesResponse = domain.Series[domain.PointsCurrency]

// CountrySeriesResponse documents the forecast and settlement series body.
type CountrySeriesResponse = domain.Series[domain.PointsCountry]

// HandleGetDayAheadSeries godoc
// @Summary Day-ahead price series
// @Description Returns day-ahead auction prices between start (inclusive) and end (exclusive). Fields without a value are omitted.
// @Tags Series, Public
// @Produce json
// @Security BearerAuth
// @Param start query string true "Inclusive lower bound" format(date) example(2022-01-01)
// @Param end query string true "Exclusive upper bound" format(date) example(2023-01-01)
// @Param granularity query string false "Point spacing" Enums(QUARTER_HOURLY, HOURLY, DAILY) default(HOURLY)
// @Param country query string true "Country or bidding zone" example(DE)
// @Param provider query string false "Price source" Enums(ENERGY_CHARTS, AWATTAR)
// @Success 200 {object} DayAheadSeriesResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 502 {object} ErrorResponse "Provider unavailable"
// @Router /series/day_ahead [get]
func HandleGetDayAheadSeries(svc service.PriceServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := newQueryParser(r.URL.Query())
		q := service.DayAheadQuery{
			Start:       p.requiredDate("start"),
			End:         p.requiredDate("end"),
			Granularity: enumParam(p, "granularity", domain.ParseGranularity, domain.GranularityHourly, false),
			Country:     p.requiredString("country"),
			Provider:    enumParam(p, "provider", domain.ParseProviderName, "", false),
		}
		if err := p.err(); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		series, err := svc.SeriesDayAheadPrice(r.Context(), q)
		writeSeries(w, series, err)
	}
}

// HandleGetForecastSeries godoc
// @Summary Price forecast series
// @Description Returns a stored price forecast run. run_date defaults to the current UTC date at request time.
// @Tags Series, Public
// @Produce json
// @Security BearerAuth
// @Param country query string true "Country or bidding zone" example(DE)
// @Param model query string true "Forecast scenario" Enums(CENTRAL, HIGH, LOW)
// @Param run_date query string false "Forecast run date, defaults to today" format(date)
// @Param granularity query string false "Point spacing" Enums(DAILY, HOURLY) default(HOURLY)
// @Success 200 {object} CountrySeriesResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 404 {object} ErrorResponse "No forecast run"
// @Router /series/forecasts [get]
func HandleGetForecastSeries(svc service.PriceServiceInterface, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := newQueryParser(r.URL.Query())
		q := service.ForecastQuery{
			Country: p.requiredString("country"),
			Model:   enumParam(p, "model", domain.ParseModel, "", true),
			// evaluated per request, never at route registration
			RunDate:     p.optionalDate("run_date", domain.Today(now())),
			Granularity: enumParam(p, "granularity", domain.ParseGranularity, domain.GranularityHourly, false),
		}
		if q.Granularity != domain.GranularityDaily && q.Granularity != domain.GranularityHourly {
			p.fail("granularity must be one of DAILY, HOURLY, got %q", p.raw("granularity"))
		}
		if err := p.err(); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		series, err := svc.SeriesGetupPrices(r.Context(), q)
		writeSeries(w, series, err)
	}
}

// HandleGetFuturesSettlements godoc
// @Summary Futures settlement prices
// @Description Returns the settlement price of every delivery period traded on trading_date. Answers 501 where no settlement store is configured.
// @Tags Series, Public
// @Produce json
// @Security BearerAuth
// @Param commodity query string true "Commodity" Enums(POWER, GAS)
// @Param country query string true "Country or bidding zone" example(DE)
// @Param trading_date query string true "Trading date" format(date) example(2023-01-01)
// @Success 200 {object} CountrySeriesResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 404 {object} ErrorResponse "Nothing settled on that date"
// @Failure 501 {object} ErrorResponse "Not implemented"
// @Router /futures/settlements [get]
func HandleGetFuturesSettlements(svc service.PriceServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := newQueryParser(r.URL.Query())
		q := service.SettlementQuery{
			Commodity:   enumParam(p, "commodity", domain.ParseCommodity, "", true),
			Country:     p.requiredString("country"),
			TradingDate: p.requiredDate("trading_date"),
		}
		if err := p.err(); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		series, err := svc.FuturesSettlementPrices(r.Context(), q)
		writeSeries(w, series, err)
	}
}

func writeSeries[T domain.Point[T]](w http.ResponseWriter, series *domain.Series[T], err error) {
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if series == nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
		return
	}
	writeJSON(w, http.StatusOK, series)
}
