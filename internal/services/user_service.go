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

// UserService handles registration, login and identity resolution.
type UserService interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.User, string, error)
	// Login verifies credentials and issues a token bound to the user id.
	// Unknown email and wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	// Resolve loads the user behind a validated token's subject. It is the
	// only bridge between token validation and authorization decisions and
	// trusts nothing but the subject id handed to it.
	Resolve(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type userService struct {
	userRepo    repositories.UserRepository
	companyRepo repositories.CompanyRepository
	authSvc     AuthService
}

func NewUserService(userRepo repositories.UserRepository, companyRepo repositories.CompanyRepository, authSvc AuthService) UserService {
	return &userService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		authSvc:     authSvc,
	}
}

// RegisterRequest carries the fields needed to create an account.
type RegisterRequest struct {
	Email     string
	Password  string
	CompanyID uuid.UUID
	Role      string
}

func (s *userService) Register(ctx context.Context, req *RegisterRequest) (*models.User, string, error) {
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		return nil, "", fmt.Errorf("invalid role %q", role)
	}

	// The target company must exist before a user can join it.
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrCompanyNotFound
		}
		return nil, "", fmt.Errorf("failed to look up company: %w", err)
	}

	passwordHash, err := HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		CompanyID:    req.CompanyID,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}
	if !created {
		return nil, "", ErrEmailTaken
	}

	token, err := s.authSvc.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.authSvc.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) Resolve(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// A structurally valid token whose subject no longer exists.
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	return user, nil
}
