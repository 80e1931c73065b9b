package service

import (
	"time"

	"powerprices/internal/domain"
)

// DayAheadQuery selects day-ahead prices in [Start, End).
type DayAheadQuery struct {
	Start       time.Time
	End         time.Time
	Country     string
	Granularity domain.Granularity
	Provider    domain.ProviderName // empty means any provider covering the country
}

// ForecastQuery selects one forecast run.
type ForecastQuery struct {
	Country     string
	Model       domain.Model
	RunDate     time.Time
	Granularity domain.Granularity
}

// SettlementQuery selects the settlement curve of one trading date.
type SettlementQuery struct {
	Commodity   domain.Commodity
	Country     string
	TradingDate time.Time
}
