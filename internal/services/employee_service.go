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

// EmployeeService handles employee records. Every operation takes the
// caller's companyID and never reaches outside it: a cross-tenant lookup is
// answered with ErrEmployeeNotFound, not a forbidden error, so callers
// cannot probe for the existence of other tenants' employees.
type EmployeeService interface {
	Create(ctx context.Context, companyID uuid.UUID, employeeNumber, name string) (*models.Employee, error)
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*models.Employee, error)
	GetByNumber(ctx context.Context, companyID uuid.UUID, employeeNumber string) (*models.Employee, error)
	List(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*models.Employee, error)
}

type employeeService struct {
	employeeRepo repositories.EmployeeRepository
}

func NewEmployeeService(employeeRepo repositories.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) Create(ctx context.Context, companyID uuid.UUID, employeeNumber, name string) (*models.Employee, error) {
	if employeeNumber == "" {
		return nil, errors.New("employee number is required")
	}
	if name == "" {
		return nil, errors.New("employee name is required")
	}

	employee := &models.Employee{
		ID:             uuid.New(),
		CompanyID:      companyID,
		EmployeeNumber: employeeNumber,
		Name:           name,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.employeeRepo.Create(ctx, employee)
	if err != nil {
		return nil, err
	}
	if !created {
		// Employee numbers are unique per company, not globally.
		return nil, ErrDuplicateEmployeeNumber
	}
	return employee, nil
}

func (s *employeeService) GetByID(ctx context.Context, companyID, id uuid.UUID) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) GetByNumber(ctx context.Context, companyID uuid.UUID, employeeNumber string) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByNumber(ctx, companyID, employeeNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) List(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*models.Employee, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.employeeRepo.List(ctx, companyID, limit, offset)
}
