package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"powerprices/internal/domain"
)

// SettlementCurve holds the settlement prices of every delivery period on a trading date.
type SettlementCurve struct {
	Commodity   domain.Commodity
	Country     string
	TradingDate time.Time
	Points      []domain.PointsCountry // keyed by delivery start
}

// SettlementRepository defines DB operations for futures settlements.
type SettlementRepository interface {
	UpsertSettlements(ctx context.Context, curve SettlementCurve) error
	GetSettlements(ctx context.Context, commodity domain.Commodity, country string, tradingDate time.Time) ([]domain.PointsCountry, error)
}

// PostgresSettlementRepository is an implementation of SettlementRepository using PostgreSQL.
type PostgresSettlementRepository struct {
	db *sql.DB
}

// NewPostgresSettlementRepository creates a new PostgresSettlementRepository.
func NewPostgresSettlementRepository(db *sql.DB) SettlementRepository {
	return &PostgresSettlementRepository{db: db}
}

// UpsertSettlements stores a settlement curve, replacing prices of known delivery periods.
func (r *PostgresSettlementRepository) UpsertSettlements(ctx context.Context, curve SettlementCurve) error {
	query := `INSERT INTO futures_settlements (commodity, country, trading_date, delivery_start, price)
              VALUES ($1, $2, $3::date, $4, $5::numeric)
              ON CONFLICT (commodity, country, trading_date, delivery_start)
              DO UPDATE SET price = EXCLUDED.price, imported_at = NOW()`

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("prepare settlement upsert: %w", err)
		}
		defer stmt.Close() //nolint:errcheck // closed with the transaction

		for _, p := range curve.Points {
			if _, err := stmt.ExecContext(ctx, string(curve.Commodity), curve.Country, sqlDate(curve.TradingDate), p.Timestamp.UTC(), p.Price); err != nil {
				return fmt.Errorf("upsert settlement %s: %w", p.Timestamp.Format(time.RFC3339), err)
			}
		}
		return nil
	})
}

// GetSettlements returns the curve ordered by delivery start, or nil if nothing settled that day.
func (r *PostgresSettlementRepository) GetSettlements(ctx context.Context, commodity domain.Commodity, country string, tradingDate time.Time) ([]domain.PointsCountry, error) {
	query := `SELECT delivery_start, price
              FROM futures_settlements
              WHERE commodity=$1 AND country=$2 AND trading_date=$3::date
              ORDER BY delivery_start`

	rows, err := r.db.QueryContext(ctx, query, string(commodity), country, sqlDate(tradingDate))
	if err != nil {
		return nil, fmt.Errorf("query settlements: %w", err)
	}
	return scanPoints(rows, country)
}
