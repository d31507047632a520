package cache

import (
	"context"
	"encoding/json"
	"time"

	"finbay/internal/observability"
)

// Aside implements the cache-aside pattern: look up key in Redis, on a miss
// call load, store the result under key with ttl, and return it. Any cache
// failure falls through to the loader so Redis outages never break reads.
func Aside[T any](ctx context.Context, key, entity string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if client != nil {
		raw, err := client.Get(ctx, key).Result()
		if err == nil {
			var cached T
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
				observability.CacheHits.WithLabelValues(entity).Inc()
				return cached, nil
			}
			// Corrupt entry, drop it and reload
			client.Del(ctx, key)
		}
		observability.CacheMisses.WithLabelValues(entity).Inc()
	}

	value, err := load(ctx)
	if err != nil {
		return zero, err
	}

	if client != nil {
		if encoded, jsonErr := json.Marshal(value); jsonErr == nil {
			client.Set(ctx, key, encoded, ttl)
		}
	}

	return value, nil
}
