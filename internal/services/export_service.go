package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"staffnotes/internal/repositories"

	"github.com/google/uuid"
)

// ExportResult holds a rendered notes export.
type ExportResult struct {
	FileName        string
	FileContent     []byte
	RecordsExported int
}

// ExportService renders a company's notes as CSV, joined with the employee
// each note belongs to. The same rendering backs the synchronous download
// endpoint and the nightly archive job.
type ExportService interface {
	ExportNotesCSV(ctx context.Context, companyID uuid.UUID) (*ExportResult, error)
	// ArchiveNotesCSV renders the export and stores it in the object store
	// under a per-company key.
	ArchiveNotesCSV(ctx context.Context, companyID uuid.UUID) (string, error)
}

type exportService struct {
	noteRepo   repositories.NoteRepository
	storageSvc StorageService
	bucket     string
}

func NewExportService(noteRepo repositories.NoteRepository, storageSvc StorageService, bucket string) ExportService {
	return &exportService{
		noteRepo:   noteRepo,
		storageSvc: storageSvc,
		bucket:     bucket,
	}
}

func (s *exportService) ExportNotesCSV(ctx context.Context, companyID uuid.UUID) (*ExportResult, error) {
	rows, err := s.noteRepo.ListExportRows(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes for export: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	// Column headers kept from the original product surface.
	if err := writer.Write([]string{"Mitarbeiternummer", "Name", "Notiz", "Timestamp", "Erstellt am"}); err != nil {
		return nil, err
	}

	for _, row := range rows {
		record := []string{
			row.EmployeeNumber,
			row.EmployeeName,
			row.NoteText,
			row.Timestamp.UTC().Format(time.RFC3339),
			row.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return &ExportResult{
		FileName:        exportFileName(time.Now().UTC()),
		FileContent:     buf.Bytes(),
		RecordsExported: len(rows),
	}, nil
}

func (s *exportService) ArchiveNotesCSV(ctx context.Context, companyID uuid.UUID) (string, error) {
	result, err := s.ExportNotesCSV(ctx, companyID)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("%s/%s", companyID.String(), result.FileName)
	if err := s.storageSvc.UploadCSV(ctx, s.bucket, objectName, result.FileContent); err != nil {
		return "", fmt.Errorf("failed to archive export: %w", err)
	}
	return objectName, nil
}

func exportFileName(now time.Time) string {
	return fmt.Sprintf("notizen_export_%s.csv", now.Format("20060102_150405"))
}
