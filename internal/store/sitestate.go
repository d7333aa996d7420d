package store

import "skillforge/internal/content"

// stateKey is the site_config row holding the full content snapshot.
const stateKey = "site_state"

// schemaVersionKey records the content schema generation that last wrote
// the snapshot. Informational; reconcile handles older snapshots anyway.
const schemaVersionKey = "site_state_version"

// SchemaVersion is bumped when the content schema gains sections that the
// two-level merge alone cannot introduce.
const SchemaVersion = "1"

// SiteStateStore persists the site content snapshot in the site_config
// table. It implements content.Store, keeping the reconcile logic
// independent of the storage medium.
type SiteStateStore struct {
	cfg *SiteConfigStore
}

// NewSiteStateStore returns a SiteStateStore over the given config store.
func NewSiteStateStore(cfg *SiteConfigStore) *SiteStateStore {
	return &SiteStateStore{cfg: cfg}
}

var _ content.Store = (*SiteStateStore)(nil)

// Load returns the raw stored snapshot, or nil when none has been saved.
func (s *SiteStateStore) Load() ([]byte, error) {
	return s.cfg.Get(stateKey)
}

// Save replaces the snapshot in full, stamping the schema version in the
// same transaction. Last writer wins; there is no version check against
// concurrent admin sessions.
func (s *SiteStateStore) Save(raw []byte) error {
	return s.cfg.SetMany(map[string][]byte{
		stateKey:         raw,
		schemaVersionKey: []byte(SchemaVersion),
	})
}
