// draft.go stores per-admin content drafts in Valkey. A draft survives
// across requests (and server restarts) until it is saved, discarded, or
// its TTL lapses.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"skillforge/internal/content"
)

const (
	// draftKeyPrefix namespaces draft keys in Valkey.
	draftKeyPrefix = "draft:"

	// DefaultDraftTTL is how long an untouched draft survives.
	DefaultDraftTTL = 24 * time.Hour
)

// DraftStore manages admin content drafts in Valkey, keyed by user id.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftStore creates a draft store backed by the given Valkey client.
func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	if ttl == 0 {
		ttl = DefaultDraftTTL
	}
	return &DraftStore{client: client, ttl: ttl}
}

// Get retrieves a user's draft. Returns nil when no draft exists.
func (ds *DraftStore) Get(ctx context.Context, userID uuid.UUID) (*content.Draft, error) {
	payload, err := ds.client.Get(ctx, draftKeyPrefix+userID.String()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("draft get: %w", err)
	}

	var draft content.Draft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("draft unmarshal: %w", err)
	}
	return &draft, nil
}

// Put stores a user's draft and resets its TTL.
func (ds *DraftStore) Put(ctx context.Context, userID uuid.UUID, draft *content.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("draft marshal: %w", err)
	}
	if err := ds.client.Set(ctx, draftKeyPrefix+userID.String(), payload, ds.ttl).Err(); err != nil {
		return fmt.Errorf("draft put: %w", err)
	}
	return nil
}

// Delete removes a user's draft after a save or discard.
func (ds *DraftStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := ds.client.Del(ctx, draftKeyPrefix+userID.String()).Err(); err != nil {
		return fmt.Errorf("draft delete: %w", err)
	}
	return nil
}
