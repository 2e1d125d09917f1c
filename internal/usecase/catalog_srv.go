package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/TejaVeta/Service-app/internal/data/cache"
	"github.com/TejaVeta/Service-app/internal/data/entity"
	"github.com/TejaVeta/Service-app/internal/data/repository"
	"github.com/TejaVeta/Service-app/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type CatalogService interface {
	GetCategories(ctx context.Context, typeFilter string) ([]response.CategoryResponse, error)
	GetServicesByCategory(ctx context.Context, categoryID string) ([]response.ServiceResponse, error)
	GetService(ctx context.Context, serviceID string) (*response.ServiceResponse, error)
}

type catalogService struct {
	repo  *repository.Repository
	cache cache.CatalogCache
	sfg   singleflight.Group
	log   *zap.Logger
}

func NewCatalogService(repo *repository.Repository, catalogCache cache.CatalogCache, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:  repo,
		cache: catalogCache,
		log:   log.With(zap.String("service", "catalog")),
	}
}

// GetCategories lists categories, optionally filtered by type. Reads go
// through the cache; concurrent misses for the same filter are collapsed into
// a single database query.
func (s *catalogService) GetCategories(ctx context.Context, typeFilter string) ([]response.CategoryResponse, error) {
	if typeFilter != "" {
		if typeFilter != string(entity.CategoryTypeHome) && typeFilter != string(entity.CategoryTypeCommercial) {
			return nil, fmt.Errorf("invalid category type %s", typeFilter)
		}
	}

	cached, err := s.cache.GetCategories(ctx, typeFilter)
	if err == nil {
		return response.CategoriesToResponse(cached), nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.log.Warn("Category cache read failed", zap.Error(err))
	}

	result, err, _ := s.sfg.Do("categories:"+typeFilter, func() (any, error) {
		var filter *string
		if typeFilter != "" {
			filter = &typeFilter
		}

		categories, err := s.repo.Category.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}

		if err := s.cache.SetCategories(ctx, typeFilter, categories); err != nil {
			s.log.Warn("Category cache write failed", zap.Error(err))
		}

		return categories, nil
	})
	if err != nil {
		s.log.Error("Failed to list categories",
			zap.Error(err),
			zap.String("type", typeFilter),
		)
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return response.CategoriesToResponse(result.([]*entity.Category)), nil
}

func (s *catalogService) GetServicesByCategory(ctx context.Context, categoryID string) ([]response.ServiceResponse, error) {
	categoryUUID, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID format %s: %w", categoryID, err)
	}

	cached, err := s.cache.GetServices(ctx, categoryID)
	if err == nil {
		return response.ServicesToResponse(cached), nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.log.Warn("Service cache read failed", zap.Error(err))
	}

	result, err, _ := s.sfg.Do("services:"+categoryID, func() (any, error) {
		category, err := s.repo.Category.FindByID(ctx, categoryUUID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("category %s not found", categoryID)
		}

		services, err := s.repo.Service.FindByCategoryID(ctx, categoryUUID)
		if err != nil {
			return nil, err
		}

		if err := s.cache.SetServices(ctx, categoryID, services); err != nil {
			s.log.Warn("Service cache write failed", zap.Error(err))
		}

		return services, nil
	})
	if err != nil {
		s.log.Error("Failed to list category services",
			zap.Error(err),
			zap.String("category_id", categoryID),
		)
		return nil, err
	}

	return response.ServicesToResponse(result.([]*entity.Service)), nil
}

// GetService loads a single service straight from the database. Detail pages
// are rare compared to listing, so they skip the cache.
func (s *catalogService) GetService(ctx context.Context, serviceID string) (*response.ServiceResponse, error) {
	serviceUUID, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s: %w", serviceID, err)
	}

	service, err := s.repo.Service.FindByID(ctx, serviceUUID)
	if err != nil {
		s.log.Error("Failed to get service",
			zap.Error(err),
			zap.String("service_id", serviceID),
		)
		return nil, fmt.Errorf("get service: %w", err)
	}
	if service == nil {
		return nil, fmt.Errorf("service %s not found", serviceID)
	}

	resp := response.ServiceToResponse(service)
	return &resp, nil
}
