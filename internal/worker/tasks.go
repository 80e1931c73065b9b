package worker

import (
	"fmt"

	"powerprices/internal/domain"
	"powerprices/internal/repository"
)

// Task types handled by the worker server.
const (
	TaskTypeImportForecast    = "forecast:import"
	TaskTypeImportSettlements = "settlement:import"
	TaskTypeWarmDayAhead      = "dayahead:warm"
)

// ForecastImportPayload is the body of a forecast:import task.
type ForecastImportPayload struct {
	Country string                 `json:"country" example:"DE"`
	Model   domain.Model           `json:"model" example:"CENTRAL"`
	RunDate string                 `json:"run_date" example:"2024-03-01"`
	Points  []domain.PointsCountry `json:"points"`
}

// Run converts the payload into a repository.ForecastRun.
func (p ForecastImportPayload) Run() (repository.ForecastRun, error) {
	model, err := domain.ParseModel(string(p.Model))
	if err != nil {
		return repository.ForecastRun{}, err
	}
	runDate, err := domain.ParseDate(p.RunDate)
	if err != nil {
		return repository.ForecastRun{}, fmt.Errorf("run_date: %w", err)
	}
	return repository.ForecastRun{
		Country: p.Country,
		Model:   model,
		RunDate: runDate,
		Points:  p.Points,
	}, nil
}

// SettlementImportPayload is the body of a settlement:import task.
type SettlementImportPayload struct {
	Commodity   domain.Commodity       `json:"commodity" example:"POWER"`
	Country     string                 `json:"country" example:"DE"`
	TradingDate string                 `json:"trading_date" example:"2024-03-01"`
	Points      []domain.PointsCountry `json:"points"`
}

// Curve converts the payload into a repository.SettlementCurve.
func (p SettlementImportPayload) Curve() (repository.SettlementCurve, error) {
	commodity, err := domain.ParseCommodity(string(p.Commodity))
	if err != nil {
		return repository.SettlementCurve{}, err
	}
	tradingDate, err := domain.ParseDate(p.TradingDate)
	if err != nil {
		return repository.SettlementCurve{}, fmt.Errorf("trading_date: %w", err)
	}
	return repository.SettlementCurve{
		Commodity:   commodity,
		Country:     p.Country,
		TradingDate: tradingDate,
		Points:      p.Points,
	}, nil
}

// WarmDayAheadPayload is the body of a dayahead:warm task.
// An empty Day means tomorrow, empty Countries means the configured list.
type WarmDayAheadPayload struct {
	Day       string   `json:"day,omitempty"`
	Countries []string `json:"countries,omitempty"`
}
