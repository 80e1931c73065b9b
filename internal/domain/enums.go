// Package domain holds the price series model shared by providers, storage and the HTTP layer.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidEnum is returned when a value is not part of an enumeration.
var ErrInvalidEnum = errors.New("invalid value")

// Granularity is the spacing between consecutive points of a series.
type Granularity string

// Supported granularities.
const (
	GranularityQuarterHourly Granularity = "QUARTER_HOURLY"
	GranularityHourly        Granularity = "HOURLY"
	GranularityDaily         Granularity = "DAILY"
)

var granularities = []Granularity{GranularityQuarterHourly, GranularityHourly, GranularityDaily}

// Step returns the distance between two consecutive points.
func (g Granularity) Step() time.Duration {
	switch g {
	case GranularityQuarterHourly:
		return 15 * time.Minute
	case GranularityDaily:
		return 24 * time.Hour
	default:
		return time.Hour
	}
}

// Truncate returns the start of the UTC bucket containing t.
func (g Granularity) Truncate(t time.Time) time.Time {
	return t.UTC().Truncate(g.Step())
}

// ParseGranularity parses a granularity name, case-insensitively.
func ParseGranularity(s string) (Granularity, error) {
	return parseEnum("granularity", s, granularities)
}

// ProviderName identifies an external day-ahead price source.
type ProviderName string

// Known providers.
const (
	ProviderEnergyCharts ProviderName = "ENERGY_CHARTS"
	ProviderAwattar      ProviderName = "AWATTAR"
)

var providerNames = []ProviderName{ProviderEnergyCharts, ProviderAwattar}

// ParseProviderName parses a provider name, case-insensitively.
func ParseProviderName(s string) (ProviderName, error) {
	return parseEnum("provider", s, providerNames)
}

// Commodity is the underlying of a futures contract.
type Commodity string

// Traded commodities.
const (
	CommodityPower Commodity = "POWER"
	CommodityGas   Commodity = "GAS"
)

var commodities = []Commodity{CommodityPower, CommodityGas}

// ParseCommodity parses a commodity name, case-insensitively.
func ParseCommodity(s string) (Commodity, error) {
	return parseEnum("commodity", s, commodities)
}

// Model is a price forecast scenario.
type Model string

// Forecast scenarios.
const (
	ModelCentral Model = "CENTRAL"
	ModelHigh    Model = "HIGH"
	ModelLow     Model = "LOW"
)

var models = []Model{ModelCentral, ModelHigh, ModelLow}

// ParseModel parses a forecast model name, case-insensitively.
func ParseModel(s string) (Model, error) {
	return parseEnum("model", s, models)
}

func parseEnum[E ~string](field, s string, allowed []E) (E, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	for _, a := range allowed {
		if string(a) == v {
			return a, nil
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	var zero E
	return zero, fmt.Errorf("%w for %s: %q (allowed: %s)", ErrInvalidEnum, field, s, strings.Join(names, ", "))
}

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a calendar date is not formatted as YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// ParseDate parses a calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q, expected YYYY-MM-DD: %w", ErrInvalidDate, s, err)
	}
	return d, nil
}

// Today returns midnight UTC of the day containing now.
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
