package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"powerprices/internal/domain"
)

var _ DayAheadProvider = (*AwattarProvider)(nil)

// AwattarProvider fetches day-ahead prices from the aWATTar market data API.
type AwattarProvider struct {
	baseURLs map[string]string
	client   *http.Client
}

// NewAwattarProvider creates a new AwattarProvider. Empty URLs fall back to the public endpoints.
func NewAwattarProvider(baseURLDE, baseURLAT string, timeoutSec int) *AwattarProvider {
	if baseURLDE == "" {
		baseURLDE = "https://api.awattar.de/v1"
	}
	if baseURLAT == "" {
		baseURLAT = "https://api.awattar.at/v1"
	}
	return &AwattarProvider{
		baseURLs: map[string]string{
			"DE": strings.TrimRight(baseURLDE, "/"),
			"AT": strings.TrimRight(baseURLAT, "/"),
		},
		client: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

type awattarResponse struct {
	Data []struct {
		StartTimestamp int64   `json:"start_timestamp"`
		EndTimestamp   int64   `json:"end_timestamp"`
		MarketPrice    float64 `json:"marketprice"`
		Unit           string  `json:"unit"`
	} `json:"data"`
}

// Supports reports whether aWATTar runs a market API for country.
func (p *AwattarProvider) Supports(country string) bool {
	_, ok := p.baseURLs[country]
	return ok
}

// DayAheadPrices retrieves hourly market prices between start and end.
func (p *AwattarProvider) DayAheadPrices(ctx context.Context, country string, start, end time.Time) (*DayAheadPrices, error) {
	baseURL, ok := p.baseURLs[country]
	if !ok {
		return nil, ErrUnsupportedZone
	}

	reqURL := fmt.Sprintf("%s/marketdata?start=%d&end=%d", baseURL, start.UnixMilli(), end.UnixMilli())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("awattar API request creation failed: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("awattar API request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("awattar API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result awattarResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode awattar API response: %w", err)
	}

	unit := ""
	points := make([]domain.PointsCurrency, 0, len(result.Data))
	for _, d := range result.Data {
		if unit == "" {
			unit = d.Unit
		}
		points = append(points, domain.PointsCurrency{
			Timestamp: time.UnixMilli(d.StartTimestamp).UTC(),
			Price:     decimal.NewFromFloat(d.MarketPrice),
			Currency:  "EUR",
		})
	}

	return &DayAheadPrices{
		Provider: domain.ProviderAwattar,
		Unit:     normalizeUnit(unit),
		Points:   points,
	}, nil
}
