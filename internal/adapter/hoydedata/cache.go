package hoydedata

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/couchcryptid/osm-peak-fixer/internal/domain"
	"github.com/couchcryptid/osm-peak-fixer/internal/observability"
)

// CachedResolver wraps a resolver with a per-run LRU cache so repeated
// coordinates are not sent to the API twice. Nothing is persisted between
// runs.
type CachedResolver struct {
	inner   domain.ElevationResolver
	cache   *lru.Cache[domain.Coordinate, domain.Elevation]
	metrics *observability.Metrics
}

// NewCachedResolver creates a cache decorator around a resolver.
func NewCachedResolver(inner domain.ElevationResolver, size int, metrics *observability.Metrics) (*CachedResolver, error) {
	cache, err := lru.New[domain.Coordinate, domain.Elevation](size)
	if err != nil {
		return nil, err
	}
	return &CachedResolver{inner: inner, cache: cache, metrics: metrics}, nil
}

// Elevations serves known coordinates from the cache and forwards the rest
// to the underlying resolver in one batch.
func (c *CachedResolver) Elevations(ctx context.Context, coords []domain.Coordinate) (map[domain.Coordinate]domain.Elevation, error) {
	results := make(map[domain.Coordinate]domain.Elevation, len(coords))
	var misses []domain.Coordinate

	for _, coord := range coords {
		if e, ok := c.cache.Get(coord); ok {
			c.metrics.CacheLookups.WithLabelValues("hit").Inc()
			results[coord] = e
			continue
		}
		c.metrics.CacheLookups.WithLabelValues("miss").Inc()
		misses = append(misses, coord)
	}

	if len(misses) == 0 {
		return results, nil
	}

	resolved, err := c.inner.Elevations(ctx, misses)
	if err != nil {
		return nil, err
	}
	for coord, e := range resolved {
		results[coord] = e
		// Only cache found elevations so a coordinate the API failed to
		// cover can still be retried on a later occurrence.
		if e.Found {
			c.cache.Add(coord, e)
		}
	}
	return results, nil
}
