package store

import (
	"database/sql"
	"fmt"
	"time"
)

// SiteConfigStore manages backend configuration rows in the site_config
// key/value table. The full site content snapshot lives here too, under a
// single key (see SiteStateStore).
type SiteConfigStore struct {
	db *sql.DB
}

// NewSiteConfigStore returns a new SiteConfigStore backed by the given database.
func NewSiteConfigStore(db *sql.DB) *SiteConfigStore {
	return &SiteConfigStore{db: db}
}

// Get returns the raw value for a key, or nil when the key is absent.
func (s *SiteConfigStore) Get(key string) ([]byte, error) {
	var val []byte
	err := s.db.QueryRow(`SELECT value FROM site_config WHERE key = $1`, key).Scan(&val)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get site config %q: %w", key, err)
	}
	return val, nil
}

// Set upserts a single config row. Creates it if it doesn't exist.
func (s *SiteConfigStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO site_config (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("set site config %q: %w", key, err)
	}
	return nil
}

// SetMany updates multiple config rows in a single transaction.
func (s *SiteConfigStore) SetMany(values map[string][]byte) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("set site config: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO site_config (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("set site config: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for k, v := range values {
		if _, err := stmt.Exec(k, v, now); err != nil {
			return fmt.Errorf("set site config %q: %w", k, err)
		}
	}

	return tx.Commit()
}
