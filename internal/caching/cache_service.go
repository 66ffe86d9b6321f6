package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"staffnotes/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CacheService fronts the public company lookup. That endpoint is the only
// unauthenticated read in the system, so it is the one worth caching.
type CacheService interface {
	GetCompany(ctx context.Context, companyID uuid.UUID) (*models.Company, error)
	SetCompany(ctx context.Context, company *models.Company, ttl time.Duration) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetCompany(ctx context.Context, companyID uuid.UUID) (*models.Company, error) {
	key := companyKey(companyID)
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var company models.Company
	if err := json.Unmarshal(data, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *redisCacheService) SetCompany(ctx context.Context, company *models.Company, ttl time.Duration) error {
	data, err := json.Marshal(company)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, companyKey(company.ID), data, ttl).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func companyKey(companyID uuid.UUID) string {
	return fmt.Sprintf("staffnotes:company:%s", companyID.String())
}
