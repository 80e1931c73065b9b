package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"powerprices/internal/domain"
)

// scanPoints reads (timestamp, price) rows and closes them. It returns nil for an empty result.
func scanPoints(rows *sql.Rows, country string) ([]domain.PointsCountry, error) {
	defer rows.Close() //nolint:errcheck // read-only

	var points []domain.PointsCountry
	for rows.Next() {
		p := domain.PointsCountry{Country: country}
		var price decimal.Decimal
		if err := rows.Scan(&p.Timestamp, &price); err != nil {
			return nil, fmt.Errorf("scan point: %w", err)
		}
		p.Timestamp = p.Timestamp.UTC()
		p.Price = price
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// sqlDate renders a calendar date as text so the session TimeZone cannot shift it.
func sqlDate(t time.Time) string {
	return t.UTC().Format(domain.DateLayout)
}

func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
