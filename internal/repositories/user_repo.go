package repositories

import (
	"context"
	"fmt"

	"staffnotes/internal/models"

	"github.com/google/uuid"
)

type UserRepository interface {
	// Create inserts the user and reports whether a row was written.
	// A false return means the email is already registered: the insert is
	// conditional on the unique email index, so concurrent registrations
	// with the same email cannot both succeed.
	Create(ctx context.Context, user *models.User) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type userRepo struct {
	db Database
}

func NewUserRepository(db Database) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *models.User) (bool, error) {
	query := `
		INSERT INTO users (id, company_id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, user.ID, user.CompanyID, user.Email, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to create user: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByID looks a user up by id alone. This is the identity-resolution path:
// the only input is the subject claim of a validated token, so there is no
// tenant to filter by yet.
func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, company_id, email, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.CompanyID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByEmail is global: email is unique across all companies.
func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, company_id, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`
	err := r.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.CompanyID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}
