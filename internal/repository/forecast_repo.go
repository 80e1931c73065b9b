package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"powerprices/internal/domain"
)

// ForecastRun is one published forecast of a model for a country.
type ForecastRun struct {
	Country string
	Model   domain.Model
	RunDate time.Time
	Points  []domain.PointsCountry
}

// ForecastRepository defines DB operations for price forecasts.
type ForecastRepository interface {
	UpsertForecast(ctx context.Context, run ForecastRun) error
	GetForecast(ctx context.Context, country string, model domain.Model, runDate time.Time) ([]domain.PointsCountry, error)
}

// PostgresForecastRepository is an implementation of ForecastRepository using PostgreSQL.
type PostgresForecastRepository struct {
	db *sql.DB
}

// NewPostgresForecastRepository creates a new PostgresForecastRepository.
func NewPostgresForecastRepository(db *sql.DB) ForecastRepository {
	return &PostgresForecastRepository{db: db}
}

// UpsertForecast stores all points of a run. Re-importing a run overwrites prices of existing timestamps.
func (r *PostgresForecastRepository) UpsertForecast(ctx context.Context, run ForecastRun) error {
	query := `INSERT INTO price_forecasts (country, model, run_date, ts, price)
              VALUES ($1, $2, $3::date, $4, $5::numeric)
              ON CONFLICT (country, model, run_date, ts)
              DO UPDATE SET price = EXCLUDED.price, imported_at = NOW()`

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("prepare forecast upsert: %w", err)
		}
		defer stmt.Close() //nolint:errcheck // closed with the transaction

		for _, p := range run.Points {
			if _, err := stmt.ExecContext(ctx, run.Country, string(run.Model), sqlDate(run.RunDate), p.Timestamp.UTC(), p.Price); err != nil {
				return fmt.Errorf("upsert forecast point %s: %w", p.Timestamp.Format(time.RFC3339), err)
			}
		}
		return nil
	})
}

// GetForecast returns the points of a run ordered by timestamp, or nil if the run does not exist.
func (r *PostgresForecastRepository) GetForecast(ctx context.Context, country string, model domain.Model, runDate time.Time) ([]domain.PointsCountry, error) {
	query := `SELECT ts, price
              FROM price_forecasts
              WHERE country=$1 AND model=$2 AND run_date=$3::date
              ORDER BY ts`

	rows, err := r.db.QueryContext(ctx, query, country, string(model), sqlDate(runDate))
	if err != nil {
		return nil, fmt.Errorf("query forecast: %w", err)
	}
	return scanPoints(rows, country)
}
