package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LeadStatus tracks where a lead sits in the admissions funnel.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "New"
	LeadStatusContacted LeadStatus = "Contacted"
	LeadStatusEnrolled  LeadStatus = "Enrolled"
)

// ValidLeadStatus reports whether s is one of the three enumerated values.
// Status changes are rejected server-side when this returns false.
func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusEnrolled:
		return true
	}
	return false
}

// LeadSource identifies which public form produced the lead. Enrollment
// submissions additionally trigger the notification email path.
type LeadSource string

const (
	LeadSourceEnrollment LeadSource = "enrollment"
	LeadSourceContact    LeadSource = "contact"
	LeadSourceGeneral    LeadSource = "general"
)

// Lead is a prospective-student inquiry or enrollment submission. Created
// server-side with an insert-time timestamp; only Status is ever mutated
// afterwards.
type Lead struct {
	ID        uuid.UUID       `json:"id"`
	FullName  string          `json:"fullName"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Course    *string         `json:"course,omitempty"`
	Message   *string         `json:"message,omitempty"`
	Source    LeadSource      `json:"source"`
	Details   json.RawMessage `json:"details,omitempty"`
	Status    LeadStatus      `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

// MissingField returns the name of the first required field that is empty,
// or "" when the lead is complete enough to insert.
func (l *Lead) MissingField() string {
	switch {
	case l.FullName == "":
		return "fullName"
	case l.Email == "":
		return "email"
	case l.Phone == "":
		return "phone"
	}
	return ""
}
