package cache

import (
	"context"
	"errors"

	"github.com/TejaVeta/Service-app/internal/data/entity"
)

// CatalogCache keeps catalog reads off the database. The catalog changes
// rarely, so entries expire on TTL; there is no explicit invalidation.
type CatalogCache interface {
	GetCategories(ctx context.Context, typeFilter string) ([]*entity.Category, error)
	SetCategories(ctx context.Context, typeFilter string, categories []*entity.Category) error
	GetServices(ctx context.Context, categoryID string) ([]*entity.Service, error)
	SetServices(ctx context.Context, categoryID string, services []*entity.Service) error
}

var ErrCacheMiss = errors.New("cache miss")
