package handlers

import (
	"errors"
	"net/http"

	"staffnotes/internal/common"
	"staffnotes/internal/services"

	"github.com/labstack/echo/v4"
)

// CompanyHandlers handles company-related HTTP requests
type CompanyHandlers struct {
	companyService services.CompanyService
}

// NewCompanyHandlers creates a new company handlers instance
func NewCompanyHandlers(companyService services.CompanyService) *CompanyHandlers {
	return &CompanyHandlers{companyService: companyService}
}

// CreateCompanyRequest represents the company creation request payload
type CreateCompanyRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateCompany handles creating a new company. Route is admin-gated.
func (h *CompanyHandlers) CreateCompany(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}

	company, err := h.companyService.Create(ctx, req.Name)
	if err != nil {
		return common.SendServerError(c, "Failed to create company")
	}

	return c.JSON(http.StatusCreated, company)
}

// ListCompaniesRequest represents query parameters for listing companies
type ListCompaniesRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// ListCompanies handles listing all companies. Route is admin-gated; this is
// the one listing that crosses tenants.
func (h *CompanyHandlers) ListCompanies(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListCompaniesRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	companies, err := h.companyService.List(ctx, req.Limit, req.Offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list companies")
	}

	return c.JSON(http.StatusOK, companies)
}

// GetCompany handles the public company lookup by id. It runs without
// authentication so a registration form can resolve a company id to a name.
func (h *CompanyHandlers) GetCompany(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	company, err := h.companyService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			return common.SendNotFoundError(c, "Company")
		}
		return common.SendServerError(c, "Failed to get company")
	}

	return c.JSON(http.StatusOK, company)
}
