package repositories

import (
	"context"

	"staffnotes/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	// ListByCompany returns every note whose employee belongs to the company,
	// newest timestamp first. Tenant scoping happens inside the query via the
	// employees join, not in a separate check.
	ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*models.Note, error)
	ListByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, limit, offset int) ([]*models.Note, error)
	ListExportRows(ctx context.Context, companyID uuid.UUID) ([]*models.NoteExportRow, error)
}

type noteRepo struct {
	db Database
}

func NewNoteRepository(db Database) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, note *models.Note) error {
	query := `
		INSERT INTO notes (id, employee_id, user_id, note_text, timestamp, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, note.ID, note.EmployeeID, note.UserID, note.NoteText, note.Timestamp, note.CreatedAt)
	return err
}

// Notes sharing a timestamp are ordered by id so listings are deterministic.
func (r *noteRepo) ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*models.Note, error) {
	query := `
		SELECT n.id, n.employee_id, n.user_id, n.note_text, n.timestamp, n.created_at
		FROM notes n
		JOIN employees e ON e.id = n.employee_id
		WHERE e.company_id = $1
		ORDER BY n.timestamp DESC, n.id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNotes(rows)
}

func (r *noteRepo) ListByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, limit, offset int) ([]*models.Note, error) {
	query := `
		SELECT n.id, n.employee_id, n.user_id, n.note_text, n.timestamp, n.created_at
		FROM notes n
		JOIN employees e ON e.id = n.employee_id
		WHERE e.company_id = $1 AND n.employee_id = $2
		ORDER BY n.timestamp DESC, n.id
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, companyID, employeeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNotes(rows)
}

func (r *noteRepo) ListExportRows(ctx context.Context, companyID uuid.UUID) ([]*models.NoteExportRow, error) {
	query := `
		SELECT e.employee_number, e.name, n.note_text, n.timestamp, n.created_at
		FROM notes n
		JOIN employees e ON e.id = n.employee_id
		WHERE e.company_id = $1
		ORDER BY n.timestamp DESC, n.id
	`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exportRows []*models.NoteExportRow
	for rows.Next() {
		row := &models.NoteExportRow{}
		if err := rows.Scan(&row.EmployeeNumber, &row.EmployeeName, &row.NoteText, &row.Timestamp, &row.CreatedAt); err != nil {
			return nil, err
		}
		exportRows = append(exportRows, row)
	}
	return exportRows, rows.Err()
}

func scanNotes(rows pgx.Rows) ([]*models.Note, error) {
	var notes []*models.Note
	for rows.Next() {
		note := &models.Note{}
		if err := rows.Scan(&note.ID, &note.EmployeeID, &note.UserID, &note.NoteText, &note.Timestamp, &note.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}
