package models

import (
	"time"

	"github.com/google/uuid"
)

// Sleep quality values as submitted by clients. The server stores quality
// as free text and does not enforce this enumeration.
const (
	QualityPoor      = "Poor"
	QualityAverage   = "Average"
	QualityGood      = "Good"
	QualityExcellent = "Excellent"
)

// SleepDB represents a sleep record in the database
type SleepDB struct {
	SleepID   uuid.UUID `json:"id" db:"sleep_id"`           // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owner of the record
	Date      string    `json:"date" db:"sleep_date"`       // Calendar date as submitted, no timezone normalization
	Hours     float64   `json:"hours" db:"hours"`           // Hours slept
	Quality   string    `json:"quality" db:"quality"`       // Sleep quality label
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
