package provider

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var _ DayAheadProvider = (*DayAheadProviderFacade)(nil)

// DayAheadProviderFacade is an abstraction that calls providers sequentially.
type DayAheadProviderFacade struct {
	providers []DayAheadProvider
}

// NewDayAheadProviderFacade creates a new DayAheadProviderFacade with the given list of providers.
func NewDayAheadProviderFacade(providers ...DayAheadProvider) *DayAheadProviderFacade {
	return &DayAheadProviderFacade{
		providers: providers,
	}
}

// Supports reports whether any wrapped provider covers country.
func (p *DayAheadProviderFacade) Supports(country string) bool {
	for _, prov := range p.providers {
		if prov.Supports(country) {
			return true
		}
	}
	return false
}

// DayAheadPrices calls providers sequentially until one succeeds.
func (p *DayAheadProviderFacade) DayAheadPrices(ctx context.Context, country string, start, end time.Time) (*DayAheadPrices, error) {
	var errs []error
	for _, prov := range p.providers {
		if !prov.Supports(country) {
			continue
		}
		res, err := prov.DayAheadPrices(ctx, country, start, end)
		if err == nil {
			return res, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, ErrUnsupportedZone
	}
	return nil, fmt.Errorf("all providers failed: %w", errors.Join(errs...))
}
