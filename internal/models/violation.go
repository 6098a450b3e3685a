package models

import "time"

const (
	ViolationPending  = "pending"
	ViolationVerified = "verified"
	ViolationRejected = "rejected"
	ViolationPaid     = "paid"
)

// Violation is a citizen-submitted traffic violation report. Rewards are
// credited against it once the resulting challan is paid.
type Violation struct {
	ID            string     `json:"id" db:"id"`
	ReporterID    int64      `json:"-" db:"reporter_id"`
	TypeCode      string     `json:"type_code" db:"type_code"`
	Description   string     `json:"description" db:"description"`
	VehicleNumber string     `json:"vehicle_number" db:"vehicle_number"`
	City          string     `json:"city" db:"city"`
	State         string     `json:"state" db:"state"`
	Status        string     `json:"status" db:"status"`
	OccurredAt    time.Time  `json:"occurred_at" db:"occurred_at"`
	ReportedAt    time.Time  `json:"reported_at" db:"reported_at"`
	ReviewedBy    *int64     `json:"-" db:"reviewed_by"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty" db:"reviewed_at"`
	ReviewNotes   string     `json:"review_notes,omitempty" db:"review_notes"`
}

type ViolationType struct {
	Code        string `json:"code" db:"code"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	FineAmount  int64  `json:"fine_amount" db:"fine_amount"`
	IsActive    bool   `json:"is_active" db:"is_active"`
}

type ViolationReport struct {
	TypeCode      string    `json:"type_code"`
	Description   string    `json:"description"`
	VehicleNumber string    `json:"vehicle_number"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	OccurredAt    time.Time `json:"occurred_at"`
}
