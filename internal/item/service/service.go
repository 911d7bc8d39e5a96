package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coreapp/item-service/internal/item"
	"github.com/coreapp/item-service/internal/item/repository"
	"github.com/coreapp/item-service/pkg/logger"
	"github.com/coreapp/item-service/pkg/metrics"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicate   = errors.New("duplicate name")
	ErrInvalidName = errors.New("invalid name")
)

// Repository is the persistence surface the service needs. Both the
// in-memory and the gorm-backed repos satisfy it.
type Repository interface {
	Create(ctx context.Context, it *item.Item) error
	GetByName(ctx context.Context, name string) (*item.Item, error)
	List(ctx context.Context) ([]*item.Item, error)
}

// Service defines the item business operations used by the handler layer.
type Service interface {
	Create(ctx context.Context, name string) (*item.Item, error)
	GetByName(ctx context.Context, name string) (*item.Item, error)
	List(ctx context.Context) ([]*item.Item, error)
}

type itemService struct {
	repo     Repository
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewService returns a Service without caching.
func NewService(repo Repository) Service {
	return &itemService{repo: repo}
}

// NewCachedService returns a Service with a Redis read-through cache on
// name lookups. Cache failures degrade to repository reads.
func NewCachedService(repo Repository, cache *redis.Client, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &itemService{repo: repo, cache: cache, cacheTTL: ttl}
}

func cacheKey(name string) string {
	return "item:name:" + name
}

func (s *itemService) Create(ctx context.Context, name string) (*item.Item, error) {
	if name == "" || len(name) > item.MaxNameLen {
		return nil, ErrInvalidName
	}
	it := &item.Item{Name: name}
	if err := s.repo.Create(ctx, it); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	metrics.ItemsCreated.Inc()
	return it, nil
}

func (s *itemService) GetByName(ctx context.Context, name string) (*item.Item, error) {
	if s.cache != nil {
		if it, ok := s.cacheGet(ctx, name); ok {
			metrics.ItemLookups.WithLabelValues("hit").Inc()
			return it, nil
		}
	}

	it, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.ItemLookups.WithLabelValues("miss").Inc()
			return nil, ErrNotFound
		}
		return nil, err
	}
	metrics.ItemLookups.WithLabelValues("hit").Inc()

	if s.cache != nil {
		s.cacheSet(ctx, it)
	}
	return it, nil
}

func (s *itemService) List(ctx context.Context) ([]*item.Item, error) {
	return s.repo.List(ctx)
}

func (s *itemService) cacheGet(ctx context.Context, name string) (*item.Item, bool) {
	b, err := s.cache.Get(ctx, cacheKey(name)).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.CacheRequests.WithLabelValues("miss").Inc()
		} else {
			metrics.CacheRequests.WithLabelValues("error").Inc()
			logger.Warnf("item cache read failed: %v", err)
		}
		return nil, false
	}
	var it item.Item
	if err := json.Unmarshal(b, &it); err != nil {
		metrics.CacheRequests.WithLabelValues("error").Inc()
		return nil, false
	}
	metrics.CacheRequests.WithLabelValues("hit").Inc()
	return &it, true
}

func (s *itemService) cacheSet(ctx context.Context, it *item.Item) {
	b, err := json.Marshal(it)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(it.Name), b, s.cacheTTL).Err(); err != nil {
		logger.Warnf("item cache write failed: %v", err)
	}
}
