package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/ports"
)

const defaultGeoCacheTTL = time.Hour

// GeoCache decorates an IPLocator with a Redis-backed IP→coordinate cache.
// Key format: geoip:<ip> → "<lat>,<lon>". Cache trouble is never fatal: on
// any Redis error the lookup falls through to the inner locator.
type GeoCache struct {
	client *redis.Client
	inner  ports.IPLocator
	ttl    time.Duration
	log    zerolog.Logger
}

// NewGeoCache wraps inner with a cache on the given Redis client.
func NewGeoCache(client *redis.Client, inner ports.IPLocator, ttl time.Duration, log zerolog.Logger) *GeoCache {
	if ttl <= 0 {
		ttl = defaultGeoCacheTTL
	}
	return &GeoCache{client: client, inner: inner, ttl: ttl, log: log}
}

// Locate returns the cached coordinate for ip, or resolves and caches it.
func (g *GeoCache) Locate(ctx context.Context, ip string) (domain.Coordinate, error) {
	key := "geoip:" + ip

	cached, err := g.client.Get(ctx, key).Result()
	if err == nil {
		var coord domain.Coordinate
		if _, scanErr := fmt.Sscanf(cached, "%f,%f", &coord.Latitude, &coord.Longitude); scanErr == nil {
			return coord, nil
		}
		// Unparseable entry: drop it and re-resolve.
		_ = g.client.Del(ctx, key).Err()
	} else if err != redis.Nil {
		g.log.Warn().Err(err).Str("ip", ip).Msg("geoip cache read failed, falling through")
	}

	coord, err := g.inner.Locate(ctx, ip)
	if err != nil {
		return domain.Coordinate{}, err
	}

	val := fmt.Sprintf("%f,%f", coord.Latitude, coord.Longitude)
	if setErr := g.client.Set(ctx, key, val, g.ttl).Err(); setErr != nil {
		g.log.Warn().Err(setErr).Str("ip", ip).Msg("geoip cache write failed")
	}
	return coord, nil
}
