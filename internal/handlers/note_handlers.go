package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"staffnotes/internal/common"
	"staffnotes/internal/services"

	"github.com/labstack/echo/v4"
)

// NoteHandlers handles note-related HTTP requests
type NoteHandlers struct {
	noteService   services.NoteService
	exportService services.ExportService
}

// NewNoteHandlers creates a new note handlers instance
func NewNoteHandlers(noteService services.NoteService, exportService services.ExportService) *NoteHandlers {
	return &NoteHandlers{
		noteService:   noteService,
		exportService: exportService,
	}
}

// CreateNoteRequest represents the note creation request payload
type CreateNoteRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	NoteText   string `json:"note_text" validate:"required"`
}

// CreateNote handles appending a note to an employee of the caller's company
func (h *NoteHandlers) CreateNote(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	employeeID, err := common.ValidateUUID(req.EmployeeID, "employee_id")
	if err != nil {
		return common.SendValidationError(c, "employee_id", err.Error())
	}
	if err := common.ValidateRequiredString(req.NoteText, "note_text"); err != nil {
		return common.SendValidationError(c, "note_text", err.Error())
	}

	companyID, ok := common.GetCompanyIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	note, err := h.noteService.Create(ctx, companyID, userID, employeeID, req.NoteText)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return common.SendNotFoundError(c, "Employee")
		}
		return common.SendServerError(c, "Failed to create note")
	}

	return c.JSON(http.StatusCreated, note)
}

// ListNotesRequest represents query parameters for listing notes
type ListNotesRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// ListNotes handles listing all notes of the caller's company, newest first
func (h *NoteHandlers) ListNotes(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListNotesRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	companyID, ok := common.GetCompanyIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	notes, err := h.noteService.ListByCompany(ctx, companyID, req.Limit, req.Offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list notes")
	}

	return c.JSON(http.StatusOK, notes)
}

// ListEmployeeNotes handles listing one employee's notes, newest first
func (h *NoteHandlers) ListEmployeeNotes(c echo.Context) error {
	ctx := c.Request().Context()

	employeeID, err := common.ValidateUUID(c.Param("employee_id"), "employee_id")
	if err != nil {
		return common.SendValidationError(c, "employee_id", err.Error())
	}

	var req ListNotesRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	companyID, ok := common.GetCompanyIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	notes, err := h.noteService.ListByEmployee(ctx, companyID, employeeID, req.Limit, req.Offset)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return common.SendNotFoundError(c, "Employee")
		}
		return common.SendServerError(c, "Failed to list notes")
	}

	return c.JSON(http.StatusOK, notes)
}

// ExportNotesCSV handles downloading the caller's company notes as CSV
func (h *NoteHandlers) ExportNotesCSV(c echo.Context) error {
	ctx := c.Request().Context()

	companyID, ok := common.GetCompanyIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	result, err := h.exportService.ExportNotesCSV(ctx, companyID)
	if err != nil {
		return common.SendServerError(c, "Failed to export notes")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", result.FileName))
	return c.Blob(http.StatusOK, "text/csv", result.FileContent)
}
