package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"staffnotes/internal/caching"
	"staffnotes/internal/models"
	"staffnotes/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Companies never change after creation, so cached lookups cannot go stale.
const companyCacheTTL = 10 * time.Minute

type CompanyService interface {
	Create(ctx context.Context, name string) (*models.Company, error)
	// GetByID is intentionally unscoped and requires no authentication:
	// any caller may resolve a company id to its name.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	List(ctx context.Context, limit, offset int) ([]*models.Company, error)
}

type companyService struct {
	companyRepo repositories.CompanyRepository
	cacheSvc    caching.CacheService
}

func NewCompanyService(companyRepo repositories.CompanyRepository, cacheSvc caching.CacheService) CompanyService {
	return &companyService{
		companyRepo: companyRepo,
		cacheSvc:    cacheSvc,
	}
}

func (s *companyService) Create(ctx context.Context, name string) (*models.Company, error) {
	if name == "" {
		return nil, errors.New("company name is required")
	}

	company := &models.Company{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	if s.cacheSvc != nil {
		cached, err := s.cacheSvc.GetCompany(ctx, id)
		if err != nil {
			log.Printf("WARN: company cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	if s.cacheSvc != nil {
		if err := s.cacheSvc.SetCompany(ctx, company, companyCacheTTL); err != nil {
			log.Printf("WARN: company cache write failed: %v", err)
		}
	}
	return company, nil
}

func (s *companyService) List(ctx context.Context, limit, offset int) ([]*models.Company, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.companyRepo.List(ctx, limit, offset)
}
