// Package repository implements PostgreSQL storage for forecast runs and futures settlements.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"powerprices/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver registration
)

const pingTimeout = 5 * time.Second

// NewPostgresDB opens a connection pool and checks that the database answers.
func NewPostgresDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeSec) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("unable to connect to database %s:%d/%s: %w", cfg.Host, cfg.Port, cfg.Name, err)
	}
	return db, nil
}
