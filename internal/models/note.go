package models

import (
	"time"

	"github.com/google/uuid"
)

// Note is append-only: there is no update or delete path.
type Note struct {
	ID         uuid.UUID `json:"id" db:"id"`
	EmployeeID uuid.UUID `json:"employee_id" db:"employee_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	NoteText   string    `json:"note_text" db:"note_text"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// NoteExportRow is a note joined with its employee, as written to CSV exports.
type NoteExportRow struct {
	EmployeeNumber string
	EmployeeName   string
	NoteText       string
	Timestamp      time.Time
	CreatedAt      time.Time
}
