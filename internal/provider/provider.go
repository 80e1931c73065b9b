// Package provider implements external sources of day-ahead electricity prices.
package provider

import (
	"context"
	"errors"
	"time"

	"powerprices/internal/domain"
)

// ErrUnsupportedZone is returned when a provider has no market data for a country.
var ErrUnsupportedZone = errors.New("country not covered by provider")

// DayAheadPrices is the raw result of a provider call.
type DayAheadPrices struct {
	Provider domain.ProviderName     `json:"provider"`
	Unit     string                  `json:"unit"`
	Points   []domain.PointsCurrency `json:"points"`
}

// DayAheadProvider fetches day-ahead auction prices for a country in [start, end).
type DayAheadProvider interface {
	Supports(country string) bool
	DayAheadPrices(ctx context.Context, country string, start, end time.Time) (*DayAheadPrices, error)
}

// Registry keeps the configured providers in priority order.
type Registry struct {
	names  []domain.ProviderName
	byName map[domain.ProviderName]DayAheadProvider
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[domain.ProviderName]DayAheadProvider)}
}

// Register adds a provider; registering a name twice replaces the provider but keeps its position.
func (r *Registry) Register(name domain.ProviderName, p DayAheadProvider) {
	if _, ok := r.byName[name]; !ok {
		r.names = append(r.names, name)
	}
	r.byName[name] = p
}

// Get returns the provider registered under name.
func (r *Registry) Get(name domain.ProviderName) (DayAheadProvider, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Len returns the number of registered providers.
func (r *Registry) Len() int { return len(r.names) }

// Chain returns a fallback facade over every provider that covers country,
// or nil when none does.
func (r *Registry) Chain(country string) DayAheadProvider {
	var providers []DayAheadProvider
	for _, name := range r.names {
		if p := r.byName[name]; p.Supports(country) {
			providers = append(providers, p)
		}
	}
	switch len(providers) {
	case 0:
		return nil
	case 1:
		return providers[0]
	default:
		return NewDayAheadProviderFacade(providers...)
	}
}
