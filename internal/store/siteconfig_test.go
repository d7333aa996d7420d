package store_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"skillforge/internal/content"
	"skillforge/internal/store"
)

func TestSiteConfigGetSet(t *testing.T) {
	db := testDB(t)
	s := store.NewSiteConfigStore(db)

	key := "test-config-key"
	t.Cleanup(func() { cleanConfig(t, db, key) })

	// Absent key returns nil, not an error.
	val, err := s.Get(key)
	if err != nil {
		t.Fatalf("Get (absent): %v", err)
	}
	if val != nil {
		t.Errorf("expected nil for absent key, got %q", val)
	}

	if err := s.Set(key, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, err = s.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(val, []byte(`{"a":1}`)) {
		t.Errorf("Get: got %q", val)
	}

	// Upsert replaces.
	if err := s.Set(key, []byte(`{"a":2}`)); err != nil {
		t.Fatalf("Set (upsert): %v", err)
	}
	val, _ = s.Get(key)
	if !bytes.Equal(val, []byte(`{"a":2}`)) {
		t.Errorf("upsert: got %q", val)
	}
}

func TestSiteConfigSetMany(t *testing.T) {
	db := testDB(t)
	s := store.NewSiteConfigStore(db)

	keys := []string{"test-many-1", "test-many-2"}
	t.Cleanup(func() { cleanConfig(t, db, keys...) })

	err := s.SetMany(map[string][]byte{
		keys[0]: []byte("one"),
		keys[1]: []byte("two"),
	})
	if err != nil {
		t.Fatalf("SetMany: %v", err)
	}

	for i, want := range []string{"one", "two"} {
		val, err := s.Get(keys[i])
		if err != nil {
			t.Fatalf("Get %q: %v", keys[i], err)
		}
		if string(val) != want {
			t.Errorf("%q: got %q, want %q", keys[i], val, want)
		}
	}
}

func TestSiteStateStoreRoundTrip(t *testing.T) {
	db := testDB(t)
	s := store.NewSiteStateStore(store.NewSiteConfigStore(db))

	t.Cleanup(func() { cleanConfig(t, db, store.TestStateKey, store.TestSchemaVersionKey) })

	state := content.Default()
	state.Site.Name = "Round Trip"
	raw, err := json.Marshal(state)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Save(raw); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := content.Reconcile(loaded)
	if got.Site.Name != "Round Trip" {
		t.Errorf("site name after reload: %q", got.Site.Name)
	}

	// The schema version row is written alongside the snapshot.
	version, err := store.NewSiteConfigStore(db).Get(store.TestSchemaVersionKey)
	if err != nil {
		t.Fatalf("Get version: %v", err)
	}
	if string(version) != store.SchemaVersion {
		t.Errorf("schema version: got %q, want %q", version, store.SchemaVersion)
	}
}
