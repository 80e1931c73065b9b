package testkit

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"powerprices/internal/repository"
)

// OpenMigratedDB opens the suite database and applies every migration.
func (s *Suite) OpenMigratedDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("pgx", s.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := repository.RunMigrations(db, zap.NewNop().Sugar()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// OpenRedis connects to the suite Redis instance.
func (s *Suite) OpenRedis(ctx context.Context) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: s.RedisAddr()})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// Reset truncates the given tables and flushes the current Redis database.
func Reset(ctx context.Context, db *sql.DB, rdb *redis.Client, tables ...string) error {
	if len(tables) > 0 {
		if _, err := db.ExecContext(ctx, "TRUNCATE TABLE "+strings.Join(tables, ", ")); err != nil {
			return fmt.Errorf("truncate %v: %w", tables, err)
		}
	}
	if rdb != nil {
		if err := rdb.FlushDB(ctx).Err(); err != nil {
			return fmt.Errorf("flush redis: %w", err)
		}
	}
	return nil
}
