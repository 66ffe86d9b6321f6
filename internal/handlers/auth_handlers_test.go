package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staffnotes/internal/models"
	"staffnotes/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *services.RegisterRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockUserService) Resolve(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func postJSON(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister_Success(t *testing.T) {
	userSvc := &MockUserService{}
	h := NewAuthHandlers(userSvc)

	companyID := uuid.New()
	user := &models.User{ID: uuid.New(), CompanyID: companyID, Email: "anna@example.com", Role: models.RoleUser}
	userSvc.On("Register", mock.Anything, mock.MatchedBy(func(req *services.RegisterRequest) bool {
		return req.Email == "anna@example.com" && req.CompanyID == companyID
	})).Return(user, "signed-token", nil)

	c, rec := postJSON("/api/auth/register", `{"email":"anna@example.com","password":"hunter22","company_id":"`+companyID.String()+`"}`)
	assert.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"signed-token"`)
	assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
	assert.NotContains(t, rec.Body.String(), "password")
	userSvc.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	userSvc := &MockUserService{}
	h := NewAuthHandlers(userSvc)

	companyID := uuid.New()
	userSvc.On("Register", mock.Anything, mock.Anything).Return(nil, "", services.ErrEmailTaken)

	c, rec := postJSON("/api/auth/register", `{"email":"taken@example.com","password":"hunter22","company_id":"`+companyID.String()+`"}`)
	assert.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_CompanyMissing(t *testing.T) {
	userSvc := &MockUserService{}
	h := NewAuthHandlers(userSvc)

	companyID := uuid.New()
	userSvc.On("Register", mock.Anything, mock.Anything).Return(nil, "", services.ErrCompanyNotFound)

	c, rec := postJSON("/api/auth/register", `{"email":"anna@example.com","password":"hunter22","company_id":"`+companyID.String()+`"}`)
	assert.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegister_InvalidEmail(t *testing.T) {
	userSvc := &MockUserService{}
	h := NewAuthHandlers(userSvc)

	c, rec := postJSON("/api/auth/register", `{"email":"not-an-email","password":"hunter22","company_id":"`+uuid.NewString()+`"}`)
	assert.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	userSvc.AssertNotCalled(t, "Register")
}

func TestRegister_InvalidRole(t *testing.T) {
	userSvc := &MockUserService{}
	h := NewAuthHandlers(userSvc)

	c, rec := postJSON("/api/auth/register", `{"email":"anna@example.com","password":"hunter22","company_id":"`+uuid.NewString()+`","role":"superadmin"}`)
	assert.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	userSvc.AssertNotCalled(t, "Register")
}

func TestLogin_Success(t *testing.T) {
	userSvc := &MockUserService{}
	h := NewAuthHandlers(userSvc)

	user := &models.User{ID: uuid.New(), CompanyID: uuid.New(), Email: "anna@example.com", Role: models.RoleUser}
	userSvc.On("Login", mock.Anything, "anna@example.com", "hunter22").Return(user, "signed-token", nil)

	c, rec := postJSON("/api/auth/login", `{"email":"anna@example.com","password":"hunter22"}`)
	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"signed-token"`)
}

func TestLogin_BadCredentialsAreGeneric(t *testing.T) {
	userSvc := &MockUserService{}
	h := NewAuthHandlers(userSvc)

	userSvc.On("Login", mock.Anything, "anna@example.com", "wrong").Return(nil, "", services.ErrInvalidCredentials)
	userSvc.On("Login", mock.Anything, "nobody@example.com", "hunter22").Return(nil, "", services.ErrInvalidCredentials)

	c1, rec1 := postJSON("/api/auth/login", `{"email":"anna@example.com","password":"wrong"}`)
	assert.NoError(t, h.Login(c1))
	c2, rec2 := postJSON("/api/auth/login", `{"email":"nobody@example.com","password":"hunter22"}`)
	assert.NoError(t, h.Login(c2))

	// Wrong password and unknown email must be indistinguishable.
	assert.Equal(t, http.StatusUnauthorized, rec1.Code)
	assert.Equal(t, rec1.Body.String(), rec2.Body.String())
}

func TestLogin_MissingFields(t *testing.T) {
	userSvc := &MockUserService{}
	h := NewAuthHandlers(userSvc)

	c, rec := postJSON("/api/auth/login", `{"email":"anna@example.com"}`)
	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	userSvc.AssertNotCalled(t, "Login")
}
