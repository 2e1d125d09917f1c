package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/TejaVeta/Service-app/internal/data/entity"

	"github.com/redis/go-redis/v9"
)

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r *RedisCache) GetCategories(ctx context.Context, typeFilter string) ([]*entity.Category, error) {
	var categories []*entity.Category
	if err := r.get(ctx, categoriesKey(typeFilter), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *RedisCache) SetCategories(ctx context.Context, typeFilter string, categories []*entity.Category) error {
	return r.set(ctx, categoriesKey(typeFilter), categories)
}

func (r *RedisCache) GetServices(ctx context.Context, categoryID string) ([]*entity.Service, error) {
	var services []*entity.Service
	if err := r.get(ctx, servicesKey(categoryID), &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *RedisCache) SetServices(ctx context.Context, categoryID string, services []*entity.Service) error {
	return r.set(ctx, servicesKey(categoryID), services)
}

func (r *RedisCache) get(ctx context.Context, key string, dest any) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal cached value failed: %w", err)
	}

	return nil
}

func (r *RedisCache) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value failed: %w", err)
	}

	// Jitter spreads expirations so hot keys do not all miss at once
	jitter := time.Duration(rand.Intn(5)) * time.Minute
	ttl := r.baseTTL + jitter

	if ret := r.client.Set(ctx, key, data, ttl); ret.Err() != nil {
		return fmt.Errorf("redis set failed: %w", ret.Err())
	}
	return nil
}

func categoriesKey(typeFilter string) string {
	if typeFilter == "" {
		return "catalog:categories:all"
	}
	return "catalog:categories:" + typeFilter
}

func servicesKey(categoryID string) string {
	return "catalog:services:" + categoryID
}
