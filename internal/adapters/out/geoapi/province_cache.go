package geoapi

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/ports"

	"golang.org/x/sync/singleflight"
)

// DefaultProvinceCacheTTL bounds how long a fetched province list is served
// without asking the service again.
const DefaultProvinceCacheTTL = 24 * time.Hour

// ProvinceCache keeps the last province list in memory. Concurrent misses
// share one upstream request. When a refresh fails, a previously fetched list
// is served instead. District and ward lookups go straight through.
type ProvinceCache struct {
	next   ports.GeographyClient
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
	group  singleflight.Group

	mu        sync.RWMutex
	provinces []geography.Province
	fetchedAt time.Time
}

var _ ports.GeographyClient = (*ProvinceCache)(nil)

func NewProvinceCache(next ports.GeographyClient, ttl time.Duration, logger *slog.Logger) *ProvinceCache {
	return NewProvinceCacheWithClock(next, ttl, time.Now, logger)
}

func NewProvinceCacheWithClock(
	next ports.GeographyClient,
	ttl time.Duration,
	now func() time.Time,
	logger *slog.Logger,
) *ProvinceCache {
	if ttl <= 0 {
		ttl = DefaultProvinceCacheTTL
	}
	return &ProvinceCache{
		next:   next,
		ttl:    ttl,
		now:    now,
		logger: logger.With("component", "province_cache"),
	}
}

func (c *ProvinceCache) FetchProvinces(ctx context.Context) ([]geography.Province, error) {
	if provinces, ok := c.cached(true); ok {
		return provinces, nil
	}

	v, err, _ := c.group.Do("provinces", func() (any, error) {
		provinces, err := c.next.FetchProvinces(ctx)
		if err != nil {
			return nil, err
		}
		// An empty answer is not cached so the next call asks again.
		if len(provinces) > 0 {
			c.mu.Lock()
			c.provinces = slices.Clone(provinces)
			c.fetchedAt = c.now()
			c.mu.Unlock()
		}
		return provinces, nil
	})
	if err != nil {
		if stale, ok := c.cached(false); ok {
			c.logger.WarnContext(ctx, "Serving stale province list", "error", err)
			return stale, nil
		}
		return nil, err
	}
	return slices.Clone(v.([]geography.Province)), nil
}

func (c *ProvinceCache) FetchDistricts(ctx context.Context, provinceCode geography.Code) ([]geography.District, error) {
	return c.next.FetchDistricts(ctx, provinceCode)
}

func (c *ProvinceCache) FetchWards(ctx context.Context, districtCode geography.Code) ([]geography.Ward, error) {
	return c.next.FetchWards(ctx, districtCode)
}

func (c *ProvinceCache) cached(freshOnly bool) ([]geography.Province, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.provinces) == 0 {
		return nil, false
	}
	if freshOnly && c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return slices.Clone(c.provinces), true
}
