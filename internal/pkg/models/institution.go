package models

import "time"

// InstitutionStatus is the review state of an institution signup
type InstitutionStatus string

const (
	InstitutionPending  InstitutionStatus = "pending"
	InstitutionApproved InstitutionStatus = "approved"
	InstitutionRejected InstitutionStatus = "rejected"
)

// Institution is a hospital or blood bank account awaiting or past admin review
type Institution struct {
	ID            string            `json:"id" db:"id"`
	UserID        string            `json:"user_id" db:"user_id"`
	Name          string            `json:"name" db:"name"`
	RegNumber     string            `json:"reg_number" db:"reg_number"`
	ContactPerson string            `json:"contact_person" db:"contact_person"`
	ContactNumber string            `json:"contact_number" db:"contact_number"`
	Email         string            `json:"email" db:"email"`
	Status        InstitutionStatus `json:"status" db:"status"`
	ReviewedBy    *string           `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewedAt    *time.Time        `json:"reviewed_at,omitempty" db:"reviewed_at"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

// InstitutionSignupRequest creates the institution and its hospital account
type InstitutionSignupRequest struct {
	Name          string `json:"name"`
	RegNumber     string `json:"reg_number"`
	ContactPerson string `json:"contact_person"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}
