package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"skillforge/internal/content"
	"skillforge/internal/store"
)

// Seed populates the database with initial data: a default admin user
// when no users exist, and the canonical site content snapshot when none
// has been saved yet. Safe to call on every startup.
func Seed(db *sql.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedSiteState(db)
}

func seedAdmin(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, username, password_hash, display_name, role)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@skillforge.local", "admin", string(hash), "Admin", "admin")
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@skillforge.local",
		"password", "admin",
	)
	return nil
}

func seedSiteState(db *sql.DB) error {
	states := store.NewSiteStateStore(store.NewSiteConfigStore(db))

	raw, err := states.Load()
	if err != nil {
		return fmt.Errorf("seed check site state: %w", err)
	}
	if raw != nil {
		return nil
	}

	snapshot, err := json.Marshal(content.Default())
	if err != nil {
		return fmt.Errorf("seed marshal site state: %w", err)
	}
	if err := states.Save(snapshot); err != nil {
		return fmt.Errorf("seed save site state: %w", err)
	}

	slog.Info("database seeded with default site content")
	return nil
}
