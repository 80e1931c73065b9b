package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedDayAheadProviderDecorator wraps a DayAheadProvider with Redis caching.
type CachedDayAheadProviderDecorator struct {
	provider     DayAheadProvider
	cache        *redis.Client
	ttl          time.Duration
	providerName string
}

// NewCachedDayAheadProvider creates a new CachedDayAheadProviderDecorator.
func NewCachedDayAheadProvider(provider DayAheadProvider, cache *redis.Client, ttl time.Duration, providerName string) *CachedDayAheadProviderDecorator {
	return &CachedDayAheadProviderDecorator{
		provider:     provider,
		cache:        cache,
		ttl:          ttl,
		providerName: providerName,
	}
}

func (p *CachedDayAheadProviderDecorator) cacheKey(country string, start, end time.Time) string {
	return fmt.Sprintf("provider_cache:%s:{%s}:%d:%d", p.providerName, country, start.Unix(), end.Unix())
}

// Supports delegates to the wrapped provider.
func (p *CachedDayAheadProviderDecorator) Supports(country string) bool {
	return p.provider.Supports(country)
}

// DayAheadPrices attempts to read the series from cache before calling the underlying provider.
func (p *CachedDayAheadProviderDecorator) DayAheadPrices(ctx context.Context, country string, start, end time.Time) (*DayAheadPrices, error) {
	if p.cache == nil {
		return p.provider.DayAheadPrices(ctx, country, start, end)
	}

	key := p.cacheKey(country, start, end)

	// check cache
	if raw, err := p.cache.Get(ctx, key).Bytes(); err == nil {
		var cached DayAheadPrices
		if json.Unmarshal(raw, &cached) == nil {
			return &cached, nil
		}
	}

	res, err := p.provider.DayAheadPrices(ctx, country, start, end)
	if err != nil {
		return nil, err
	}

	// empty results are not cached, the auction may not have published yet
	if len(res.Points) > 0 {
		if raw, err := json.Marshal(res); err == nil {
			_ = p.cache.Set(ctx, key, raw, p.ttl).Err()
		}
	}

	return res, nil
}

var _ DayAheadProvider = (*CachedDayAheadProviderDecorator)(nil)
