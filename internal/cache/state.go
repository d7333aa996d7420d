// state.go provides a Valkey-backed cache of the rendered public content
// payload. The reconciled site state only changes on an admin save, so
// public requests can skip the database read and merge entirely between
// invalidations.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// stateCacheKey is the Valkey key for the cached public payload.
	stateCacheKey = "site:state"

	// DefaultStateTTL caps staleness if an invalidation is ever missed.
	DefaultStateTTL = 5 * time.Minute
)

// StateCache manages the cached public content payload in Valkey.
type StateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStateCache creates a state cache backed by the given Valkey client.
func NewStateCache(client *redis.Client, ttl time.Duration) *StateCache {
	if ttl == 0 {
		ttl = DefaultStateTTL
	}
	return &StateCache{client: client, ttl: ttl}
}

// Get retrieves the cached payload. Returns false on miss or error; a
// cache problem never fails the request, it just costs a rebuild.
func (sc *StateCache) Get(ctx context.Context) ([]byte, bool) {
	val, err := sc.client.Get(ctx, stateCacheKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("state cache get error", "error", err)
		return nil, false
	}
	return val, true
}

// Set stores the payload with the configured TTL.
func (sc *StateCache) Set(ctx context.Context, payload []byte) {
	if err := sc.client.Set(ctx, stateCacheKey, payload, sc.ttl).Err(); err != nil {
		slog.Warn("state cache set error", "error", err)
	}
}

// Invalidate removes the cached payload. Called after every admin save.
func (sc *StateCache) Invalidate(ctx context.Context) {
	if err := sc.client.Del(ctx, stateCacheKey).Err(); err != nil {
		slog.Warn("state cache invalidate error", "error", err)
	}
	slog.Debug("state cache invalidated")
}
