package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Point is a single timestamped price that can be rebuilt at another timestamp.
type Point[T any] interface {
	At() time.Time
	Value() decimal.Decimal
	With(at time.Time, price decimal.Decimal) T
}

// PointsCurrency is a price point expressed in a currency.
type PointsCurrency struct {
	Timestamp time.Time       `json:"timestamp" example:"2022-01-01T00:00:00Z"`
	Price     decimal.Decimal `json:"price" swaggertype:"string" example:"132.45"`
	Currency  string          `json:"currency,omitempty" example:"EUR"`
}

// At returns the point timestamp.
func (p PointsCurrency) At() time.Time { return p.Timestamp }

// Value returns the point price.
func (p PointsCurrency) Value() decimal.Decimal { return p.Price }

// With returns a copy of p at another timestamp and price.
func (p PointsCurrency) With(at time.Time, price decimal.Decimal) PointsCurrency {
	p.Timestamp = at
	p.Price = price
	return p
}

// PointsCountry is a price point attached to a country or bidding zone.
type PointsCountry struct {
	Timestamp time.Time       `json:"timestamp" example:"2022-01-01T00:00:00Z"`
	Price     decimal.Decimal `json:"price" swaggertype:"string" example:"98.10"`
	Country   string          `json:"country,omitempty" example:"DE"`
}

// At returns the point timestamp.
func (p PointsCountry) At() time.Time { return p.Timestamp }

// Value returns the point price.
func (p PointsCountry) Value() decimal.Decimal { return p.Price }

// With returns a copy of p at another timestamp and price.
func (p PointsCountry) With(at time.Time, price decimal.Decimal) PointsCountry {
	p.Timestamp = at
	p.Price = price
	return p
}

// Series is an ordered sequence of points without duplicate timestamps.
type Series[T Point[T]] struct {
	Country     string       `json:"country" example:"DE"`
	Granularity Granularity  `json:"granularity,omitempty" example:"HOURLY"`
	Unit        string       `json:"unit,omitempty" example:"EUR/MWh"`
	Provider    ProviderName `json:"provider,omitempty" example:"ENERGY_CHARTS"`
	Model       Model        `json:"model,omitempty" example:"CENTRAL"`
	Commodity   Commodity    `json:"commodity,omitempty" example:"POWER"`
	RunDate     string       `json:"run_date,omitempty" example:"2024-03-01"`
	TradingDate string       `json:"trading_date,omitempty" example:"2024-03-01"`
	Points      []T          `json:"points"`
}

// NewSeries sorts points by timestamp and keeps the first point of every timestamp.
func NewSeries[T Point[T]](country string, g Granularity, points []T) *Series[T] {
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return a.At().Compare(b.At())
	})
	out := make([]T, 0, len(sorted))
	for _, p := range sorted {
		if n := len(out); n > 0 && out[n-1].At().Equal(p.At()) {
			continue
		}
		out = append(out, p)
	}
	return &Series[T]{
		Country:     country,
		Granularity: g,
		Points:      out,
	}
}

// Clip keeps the points with start <= timestamp < end.
func Clip[T Point[T]](points []T, start, end time.Time) []T {
	out := make([]T, 0, len(points))
	for _, p := range points {
		at := p.At()
		if !at.Before(start) && at.Before(end) {
			out = append(out, p)
		}
	}
	return out
}

// Resample averages points into buckets of the given granularity.
// Buckets without source points are not emitted. The result is sorted.
func Resample[T Point[T]](points []T, g Granularity) []T {
	type bucket struct {
		first T
		sum   decimal.Decimal
		n     int64
	}
	buckets := make(map[time.Time]*bucket)
	keys := make([]time.Time, 0)
	for _, p := range points {
		k := g.Truncate(p.At())
		b, ok := buckets[k]
		if !ok {
			b = &bucket{first: p}
			buckets[k] = b
			keys = append(keys, k)
		}
		b.sum = b.sum.Add(p.Value())
		b.n++
	}
	slices.SortFunc(keys, func(a, b time.Time) int { return a.Compare(b) })

	out := make([]T, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		avg := b.sum
		if b.n > 1 {
			avg = b.sum.Div(decimal.NewFromInt(b.n)).Round(2)
		}
		out = append(out, b.first.With(k, avg))
	}
	return out
}
