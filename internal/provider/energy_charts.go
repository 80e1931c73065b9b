package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"powerprices/internal/domain"
)

var _ DayAheadProvider = (*EnergyChartsProvider)(nil)

// energyChartsZones maps country codes to Energy-Charts bidding zone identifiers.
var energyChartsZones = map[string]string{
	"AT":      "AT",
	"BE":      "BE",
	"CH":      "CH",
	"CZ":      "CZ",
	"DE":      "DE-LU",
	"DK1":     "DK1",
	"DK2":     "DK2",
	"ES":      "ES",
	"FR":      "FR",
	"HU":      "HU",
	"IT-NORD": "IT-North",
	"NL":      "NL",
	"NO2":     "NO2",
	"PL":      "PL",
	"SE3":     "SE3",
	"SI":      "SI",
}

// EnergyChartsProvider fetches day-ahead prices from the Energy-Charts API.
type EnergyChartsProvider struct {
	baseURL string
	client  *http.Client
}

// NewEnergyChartsProvider creates a new EnergyChartsProvider.
func NewEnergyChartsProvider(baseURL string, timeoutSec int) *EnergyChartsProvider {
	if baseURL == "" {
		baseURL = "https://api.energy-charts.info"
	}
	return &EnergyChartsProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

type energyChartsResponse struct {
	UnixSeconds []int64    `json:"unix_seconds"`
	Price       []*float64 `json:"price"`
	Unit        string     `json:"unit"`
}

// Supports reports whether Energy-Charts publishes prices for country.
func (p *EnergyChartsProvider) Supports(country string) bool {
	_, ok := energyChartsZones[country]
	return ok
}

// DayAheadPrices retrieves the day-ahead auction prices of the country's bidding zone.
func (p *EnergyChartsProvider) DayAheadPrices(ctx context.Context, country string, start, end time.Time) (*DayAheadPrices, error) {
	zone, ok := energyChartsZones[country]
	if !ok {
		return nil, ErrUnsupportedZone
	}

	q := url.Values{}
	q.Set("bzn", zone)
	q.Set("start", start.UTC().Format(time.RFC3339))
	q.Set("end", end.UTC().Format(time.RFC3339))
	reqURL := p.baseURL + "/price?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("energy-charts API request creation failed: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("energy-charts API request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("energy-charts API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result energyChartsResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode energy-charts API response: %w", err)
	}
	if len(result.UnixSeconds) != len(result.Price) {
		return nil, fmt.Errorf("energy-charts API returned %d timestamps for %d prices",
			len(result.UnixSeconds), len(result.Price))
	}

	points := make([]domain.PointsCurrency, 0, len(result.Price))
	for i, ts := range result.UnixSeconds {
		// gaps in the auction results come back as null
		if result.Price[i] == nil {
			continue
		}
		points = append(points, domain.PointsCurrency{
			Timestamp: time.Unix(ts, 0).UTC(),
			Price:     decimal.NewFromFloat(*result.Price[i]),
			Currency:  "EUR",
		})
	}

	return &DayAheadPrices{
		Provider: domain.ProviderEnergyCharts,
		Unit:     normalizeUnit(result.Unit),
		Points:   points,
	}, nil
}

// currencyCodes are the currencies European price feeds quote in.
var currencyCodes = []string{"EUR", "CHF", "CZK", "DKK", "GBP", "HUF", "NOK", "PLN", "SEK"}

// normalizeUnit turns provider spellings like "EUR / MWh" or "Eur/MWh" into "EUR/MWh".
// Only a currency code numerator is upper-cased, so "ct/kWh" stays as it is.
func normalizeUnit(unit string) string {
	unit = strings.ReplaceAll(unit, " ", "")
	if unit == "" {
		return "EUR/MWh"
	}
	parts := strings.SplitN(unit, "/", 2)
	for _, code := range currencyCodes {
		if strings.EqualFold(parts[0], code) {
			parts[0] = code
			break
		}
	}
	return strings.Join(parts, "/")
}
