package handlers

import (
	"errors"
	"net/http"

	"staffnotes/internal/common"
	"staffnotes/internal/services"

	"github.com/labstack/echo/v4"
)

// EmployeeHandlers handles employee-related HTTP requests
type EmployeeHandlers struct {
	employeeService services.EmployeeService
}

// NewEmployeeHandlers creates a new employee handlers instance
func NewEmployeeHandlers(employeeService services.EmployeeService) *EmployeeHandlers {
	return &EmployeeHandlers{employeeService: employeeService}
}

// CreateEmployeeRequest represents the employee creation request payload
type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number" validate:"required"`
	Name           string `json:"name" validate:"required"`
}

// CreateEmployee handles creating a new employee in the caller's company
func (h *EmployeeHandlers) CreateEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateRequiredString(req.EmployeeNumber, "employee_number"); err != nil {
		return common.SendValidationError(c, "employee_number", err.Error())
	}
	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}

	companyID, ok := common.GetCompanyIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	employee, err := h.employeeService.Create(ctx, companyID, req.EmployeeNumber, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmployeeNumber) {
			return common.SendConflictError(c, "Employee number already exists")
		}
		return common.SendServerError(c, "Failed to create employee")
	}

	return c.JSON(http.StatusCreated, employee)
}

// ListEmployeesRequest represents query parameters for listing employees
type ListEmployeesRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// ListEmployees handles listing the caller's company employees
func (h *EmployeeHandlers) ListEmployees(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListEmployeesRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	companyID, ok := common.GetCompanyIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	employees, err := h.employeeService.List(ctx, companyID, req.Limit, req.Offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list employees")
	}

	return c.JSON(http.StatusOK, employees)
}

// GetEmployee handles getting employee details by ID within the caller's company
func (h *EmployeeHandlers) GetEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	companyID, ok := common.GetCompanyIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	employee, err := h.employeeService.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return common.SendNotFoundError(c, "Employee")
		}
		return common.SendServerError(c, "Failed to get employee")
	}

	return c.JSON(http.StatusOK, employee)
}

// GetEmployeeByNumber handles looking an employee up by the scanned number
func (h *EmployeeHandlers) GetEmployeeByNumber(c echo.Context) error {
	ctx := c.Request().Context()

	employeeNumber := c.Param("employee_number")
	if err := common.ValidateRequiredString(employeeNumber, "employee_number"); err != nil {
		return common.SendValidationError(c, "employee_number", err.Error())
	}

	companyID, ok := common.GetCompanyIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	employee, err := h.employeeService.GetByNumber(ctx, companyID, employeeNumber)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return common.SendNotFoundError(c, "Employee")
		}
		return common.SendServerError(c, "Failed to get employee")
	}

	return c.JSON(http.StatusOK, employee)
}
