package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"go-storefront/models"
)

// ErrMiss is returned when a key is not cached
var ErrMiss = errors.New("cache miss")

const (
	// Cache key patterns
	QueryListPattern     = "products:*"
	QueryKeyFormat       = "products:%s"
	ProductDetailPattern = "product:%d"
	CatalogSnapshotKey   = "catalog:snapshot"
)

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Store caches catalog data in Redis
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore connects to Redis and checks the connection
func NewStore(ctx context.Context, config RedisConfig) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", config.Addr, err)
	}
	return NewStoreWithClient(client, config.TTL), nil
}

// NewStoreWithClient wraps an existing client. A non-positive ttl means 5 minutes.
func NewStoreWithClient(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Store{client: client, ttl: ttl}
}

// Close releases the connection pool
func (s *Store) Close() error {
	return s.client.Close()
}

// Set stores data as JSON under key
func (s *Store) Set(ctx context.Context, key string, data interface{}) error {
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, dataJSON, s.ttl).Err()
}

// Get decodes the JSON stored under key into dest. Missing keys return ErrMiss.
func (s *Store) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(val, dest)
}

// Delete removes key
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// DeleteByPattern deletes all keys matching a pattern
func (s *Store) DeleteByPattern(ctx context.Context, pattern string) error {
	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// QueryKey is the cache key of a query result
func QueryKey(state models.QueryState) string {
	state = state.Normalized()
	return fmt.Sprintf(QueryKeyFormat,
		fmt.Sprintf("%s|s=%s|p%d|l%d", state.FilterKey(), state.Sort, state.Page, state.PerPage))
}

// GetQuery returns a cached query result
func (s *Store) GetQuery(ctx context.Context, state models.QueryState) (models.QueryResult, error) {
	var res models.QueryResult
	err := s.Get(ctx, QueryKey(state), &res)
	return res, err
}

// SetQuery caches a query result
func (s *Store) SetQuery(ctx context.Context, state models.QueryState, res models.QueryResult) error {
	return s.Set(ctx, QueryKey(state), res)
}

// SaveCatalog replaces the catalog snapshot and drops every derived entry
func (s *Store) SaveCatalog(ctx context.Context, products []models.Product) error {
	if err := s.Invalidate(ctx); err != nil {
		return err
	}
	return s.Set(ctx, CatalogSnapshotKey, products)
}

// Invalidate drops every cached query result and product detail.
// The catalog snapshot is left in place.
func (s *Store) Invalidate(ctx context.Context) error {
	if err := s.DeleteByPattern(ctx, QueryListPattern); err != nil {
		return fmt.Errorf("invalidate queries: %w", err)
	}
	if err := s.DeleteByPattern(ctx, "product:*"); err != nil {
		return fmt.Errorf("invalidate details: %w", err)
	}
	return nil
}

// LoadCatalog returns the cached catalog snapshot
func (s *Store) LoadCatalog(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.Get(ctx, CatalogSnapshotKey, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns a cached product detail
func (s *Store) GetProduct(ctx context.Context, id int) (models.ProductDetail, error) {
	var d models.ProductDetail
	err := s.Get(ctx, fmt.Sprintf(ProductDetailPattern, id), &d)
	return d, err
}

// SetProduct caches a product detail
func (s *Store) SetProduct(ctx context.Context, d models.ProductDetail) error {
	return s.Set(ctx, fmt.Sprintf(ProductDetailPattern, d.ID), d)
}
