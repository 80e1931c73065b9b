//go:build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"powerprices/internal/domain"
	"powerprices/internal/testkit"
)

var (
	testDB  *sql.DB
	testRDB *redis.Client
)

// resetTestData truncates the price tables and flushes the current Redis database.
func resetTestData(t *testing.T) {
	t.Helper()
	if err := testkit.Reset(context.Background(), testDB, testRDB, "price_forecasts", "futures_settlements"); err != nil {
		t.Fatalf("reset test data: %v", err)
	}
}

// testContext returns a context with a 30-second deadline tied to the test's cleanup.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

// hourlyPoints builds n consecutive hourly points starting at start with prices base, base+1, ...
func hourlyPoints(start time.Time, n int, base int64) []domain.PointsCountry {
	points := make([]domain.PointsCountry, n)
	for i := range points {
		points[i] = domain.PointsCountry{
			Timestamp: start.Add(time.Duration(i) * time.Hour),
			Price:     decimal.NewFromInt(base + int64(i)),
		}
	}
	return points
}
