package services

import (
	"context"
	"testing"
	"time"

	"staffnotes/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type NoteServiceTestSuite struct {
	suite.Suite
	noteRepo     *MockNoteRepository
	employeeRepo *MockEmployeeRepository
	service      NoteService
	companyID    uuid.UUID
	userID       uuid.UUID
	employeeID   uuid.UUID
}

func (suite *NoteServiceTestSuite) SetupTest() {
	suite.noteRepo = &MockNoteRepository{}
	suite.employeeRepo = &MockEmployeeRepository{}
	suite.service = NewNoteService(suite.noteRepo, suite.employeeRepo)
	suite.companyID = uuid.New()
	suite.userID = uuid.New()
	suite.employeeID = uuid.New()

	suite.noteRepo.Test(suite.T())
	suite.employeeRepo.Test(suite.T())
}

func (suite *NoteServiceTestSuite) TearDownTest() {
	suite.noteRepo.AssertExpectations(suite.T())
	suite.employeeRepo.AssertExpectations(suite.T())
}

func TestNoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NoteServiceTestSuite))
}

func (suite *NoteServiceTestSuite) employee() *models.Employee {
	return &models.Employee{
		ID:             suite.employeeID,
		CompanyID:      suite.companyID,
		EmployeeNumber: "EMP001",
		Name:           "Jane Doe",
	}
}

func (suite *NoteServiceTestSuite) TestCreate_Success() {
	ctx := context.Background()

	suite.employeeRepo.On("GetByID", ctx, suite.companyID, suite.employeeID).Return(suite.employee(), nil)
	suite.noteRepo.On("Create", ctx, mock.AnythingOfType("*models.Note")).Return(nil)

	before := time.Now().UTC()
	note, err := suite.service.Create(ctx, suite.companyID, suite.userID, suite.employeeID, "spoke about schedule")
	after := time.Now().UTC()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.employeeID, note.EmployeeID)
	// The author is always the authenticated caller.
	assert.Equal(suite.T(), suite.userID, note.UserID)
	assert.Equal(suite.T(), "spoke about schedule", note.NoteText)
	assert.False(suite.T(), note.Timestamp.Before(before))
	assert.False(suite.T(), note.Timestamp.After(after))
	assert.Equal(suite.T(), note.Timestamp, note.CreatedAt)
}

func (suite *NoteServiceTestSuite) TestCreate_CrossTenantEmployee() {
	ctx := context.Background()

	// Target employee belongs to another company: the scoped lookup finds
	// nothing, and the caller learns nothing about its existence.
	suite.employeeRepo.On("GetByID", ctx, suite.companyID, suite.employeeID).Return(nil, pgx.ErrNoRows)

	_, err := suite.service.Create(ctx, suite.companyID, suite.userID, suite.employeeID, "shouldn't happen")
	assert.ErrorIs(suite.T(), err, ErrEmployeeNotFound)
}

func (suite *NoteServiceTestSuite) TestCreate_EmptyText() {
	ctx := context.Background()

	_, err := suite.service.Create(ctx, suite.companyID, suite.userID, suite.employeeID, "")
	assert.Error(suite.T(), err)
}

func (suite *NoteServiceTestSuite) TestListByCompany() {
	ctx := context.Background()
	notes := []*models.Note{
		{ID: uuid.New(), Timestamp: time.Now().UTC()},
		{ID: uuid.New(), Timestamp: time.Now().UTC().Add(-time.Hour)},
	}

	suite.noteRepo.On("ListByCompany", ctx, suite.companyID, 1000, 0).Return(notes, nil)

	got, err := suite.service.ListByCompany(ctx, suite.companyID, 0, 0)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), notes, got)
}

func (suite *NoteServiceTestSuite) TestListByEmployee_EmployeeMissing() {
	ctx := context.Background()

	suite.employeeRepo.On("GetByID", ctx, suite.companyID, suite.employeeID).Return(nil, pgx.ErrNoRows)

	_, err := suite.service.ListByEmployee(ctx, suite.companyID, suite.employeeID, 0, 0)
	assert.ErrorIs(suite.T(), err, ErrEmployeeNotFound)
}

func (suite *NoteServiceTestSuite) TestListByEmployee_Success() {
	ctx := context.Background()
	notes := []*models.Note{{ID: uuid.New(), EmployeeID: suite.employeeID}}

	suite.employeeRepo.On("GetByID", ctx, suite.companyID, suite.employeeID).Return(suite.employee(), nil)
	suite.noteRepo.On("ListByEmployee", ctx, suite.companyID, suite.employeeID, 1000, 0).Return(notes, nil)

	got, err := suite.service.ListByEmployee(ctx, suite.companyID, suite.employeeID, 0, 0)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), notes, got)
}
