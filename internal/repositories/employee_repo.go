package repositories

import (
	"context"
	"fmt"

	"staffnotes/internal/models"

	"github.com/google/uuid"
)

type EmployeeRepository interface {
	// Create inserts the employee and reports whether a row was written.
	// A false return means the employee number is already taken within the
	// company: the insert is conditional on the (company_id, employee_number)
	// unique index, so concurrent creates cannot both succeed.
	Create(ctx context.Context, employee *models.Employee) (bool, error)
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*models.Employee, error)
	GetByNumber(ctx context.Context, companyID uuid.UUID, employeeNumber string) (*models.Employee, error)
	List(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*models.Employee, error)
}

type employeeRepo struct {
	db Database
}

func NewEmployeeRepository(db Database) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *models.Employee) (bool, error) {
	query := `
		INSERT INTO employees (id, company_id, employee_number, name, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (company_id, employee_number) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, employee.ID, employee.CompanyID, employee.EmployeeNumber, employee.Name, employee.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to create employee: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *employeeRepo) GetByID(ctx context.Context, companyID, id uuid.UUID) (*models.Employee, error) {
	employee := &models.Employee{}
	query := `
		SELECT id, company_id, employee_number, name, created_at
		FROM employees
		WHERE company_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, companyID, id).Scan(&employee.ID, &employee.CompanyID, &employee.EmployeeNumber, &employee.Name, &employee.CreatedAt)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *employeeRepo) GetByNumber(ctx context.Context, companyID uuid.UUID, employeeNumber string) (*models.Employee, error) {
	employee := &models.Employee{}
	query := `
		SELECT id, company_id, employee_number, name, created_at
		FROM employees
		WHERE company_id = $1 AND employee_number = $2
	`
	err := r.db.QueryRow(ctx, query, companyID, employeeNumber).Scan(&employee.ID, &employee.CompanyID, &employee.EmployeeNumber, &employee.Name, &employee.CreatedAt)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *employeeRepo) List(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*models.Employee, error) {
	query := `
		SELECT id, company_id, employee_number, name, created_at
		FROM employees
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		employee := &models.Employee{}
		if err := rows.Scan(&employee.ID, &employee.CompanyID, &employee.EmployeeNumber, &employee.Name, &employee.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}
