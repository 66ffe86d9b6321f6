package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staffnotes/internal/models"
	"staffnotes/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// NoteService handles the append-only note log. Notes are attributed to the
// authenticated author and may only target employees of the author's company.
type NoteService interface {
	Create(ctx context.Context, companyID, userID, employeeID uuid.UUID, noteText string) (*models.Note, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*models.Note, error)
	ListByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, limit, offset int) ([]*models.Note, error)
}

type noteService struct {
	noteRepo     repositories.NoteRepository
	employeeRepo repositories.EmployeeRepository
}

func NewNoteService(noteRepo repositories.NoteRepository, employeeRepo repositories.EmployeeRepository) NoteService {
	return &noteService{
		noteRepo:     noteRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *noteService) Create(ctx context.Context, companyID, userID, employeeID uuid.UUID, noteText string) (*models.Note, error) {
	if noteText == "" {
		return nil, errors.New("note text is required")
	}

	// The tenant-scoped lookup answers both "no such employee" and
	// "employee of another company" with the same error.
	if _, err := s.employeeRepo.GetByID(ctx, companyID, employeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}

	now := time.Now().UTC()
	note := &models.Note{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		UserID:     userID,
		NoteText:   noteText,
		Timestamp:  now,
		CreatedAt:  now,
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*models.Note, error) {
	if limit <= 0 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}
	return s.noteRepo.ListByCompany(ctx, companyID, limit, offset)
}

func (s *noteService) ListByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, limit, offset int) ([]*models.Note, error) {
	// The employee must be visible inside the caller's tenant first.
	if _, err := s.employeeRepo.GetByID(ctx, companyID, employeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}

	if limit <= 0 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}
	return s.noteRepo.ListByEmployee(ctx, companyID, employeeID, limit, offset)
}
