package handlers

import (
	"errors"
	"net/http"

	"staffnotes/internal/common"
	"staffnotes/internal/models"
	"staffnotes/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers handles authentication-related HTTP requests
type AuthHandlers struct {
	userService services.UserService
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(userService services.UserService) *AuthHandlers {
	return &AuthHandlers{userService: userService}
}

// AuthResponse represents the token payload returned by register and login
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	CompanyID string `json:"company_id" validate:"required"`
	Role      string `json:"role"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if err := common.ValidateEmail(req.Email); err != nil {
		return common.SendValidationError(c, "email", err.Error())
	}
	if err := common.ValidateRequiredString(req.Password, "password"); err != nil {
		return common.SendValidationError(c, "password", err.Error())
	}
	companyID, err := common.ValidateUUID(req.CompanyID, "company_id")
	if err != nil {
		return common.SendValidationError(c, "company_id", err.Error())
	}
	if req.Role != "" && !models.ValidRole(req.Role) {
		return common.SendValidationError(c, "role", "role must be 'admin' or 'user'")
	}

	user, token, err := h.userService.Register(ctx, &services.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		CompanyID: companyID,
		Role:      req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return common.SendConflictError(c, "Email already registered")
		case errors.Is(err, services.ErrCompanyNotFound):
			return common.SendNotFoundError(c, "Company")
		default:
			return common.SendServerError(c, "Failed to register user")
		}
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles user login with email and password
func (h *AuthHandlers) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if req.Email == "" || req.Password == "" {
		return common.SendClientError(c, "Email and password are required")
	}

	user, token, err := h.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return common.SendUnauthorizedError(c)
		}
		return common.SendServerError(c, "Failed to log in")
	}

	return c.JSON(http.StatusOK, AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

// Me handles getting the current user profile
func (h *AuthHandlers) Me(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	user, err := h.userService.Resolve(ctx, userID)
	if err != nil {
		return common.SendUnauthorizedError(c)
	}

	return c.JSON(http.StatusOK, user)
}
