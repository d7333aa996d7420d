package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"skillforge/internal/models"
)

// LeadStore handles all lead-related database operations. The leads table
// is the single source of truth for submissions; nothing lead-related is
// kept inside the site content state.
type LeadStore struct {
	db *sql.DB
}

// NewLeadStore creates a new LeadStore with the given database connection.
func NewLeadStore(db *sql.DB) *LeadStore {
	return &LeadStore{db: db}
}

// Create inserts a new lead with status New and an insert-time timestamp,
// returning the stored row. Duplicate submissions create duplicate rows;
// there is no idempotency key.
func (s *LeadStore) Create(l *models.Lead) (*models.Lead, error) {
	result := &models.Lead{}
	err := s.db.QueryRow(`
		INSERT INTO leads (full_name, email, phone, course, message, source, details, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, full_name, email, phone, course, message, source, details, status, created_at
	`, l.FullName, l.Email, l.Phone, l.Course, l.Message, l.Source, l.Details, models.LeadStatusNew,
	).Scan(
		&result.ID, &result.FullName, &result.Email, &result.Phone, &result.Course,
		&result.Message, &result.Source, &result.Details, &result.Status, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	return result, nil
}

// List returns all leads, newest first.
func (s *LeadStore) List() ([]models.Lead, error) {
	rows, err := s.db.Query(`
		SELECT id, full_name, email, phone, course, message, source, details, status, created_at
		FROM leads
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(
			&l.ID, &l.FullName, &l.Email, &l.Phone, &l.Course,
			&l.Message, &l.Source, &l.Details, &l.Status, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

// FindByID retrieves a lead by its UUID. Returns nil if not found.
func (s *LeadStore) FindByID(id uuid.UUID) (*models.Lead, error) {
	l := &models.Lead{}
	err := s.db.QueryRow(`
		SELECT id, full_name, email, phone, course, message, source, details, status, created_at
		FROM leads WHERE id = $1
	`, id).Scan(
		&l.ID, &l.FullName, &l.Email, &l.Phone, &l.Course,
		&l.Message, &l.Source, &l.Details, &l.Status, &l.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find lead by id: %w", err)
	}
	return l, nil
}

// UpdateStatus moves a lead to a new funnel status. The status value must
// already be validated by the caller; the database additionally enforces
// the enum via a CHECK constraint. Returns false when no row matched.
func (s *LeadStore) UpdateStatus(id uuid.UUID, status models.LeadStatus) (bool, error) {
	res, err := s.db.Exec(`UPDATE leads SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return false, fmt.Errorf("update lead status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update lead status: %w", err)
	}
	return n > 0, nil
}

// Delete removes a lead by ID. Returns false when no row matched.
func (s *LeadStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete lead: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete lead: %w", err)
	}
	return n > 0, nil
}
