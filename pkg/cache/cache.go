// Package cache provides a redis-backed cache for product search results.
// The cache is purely an optimization: callers must treat every failure as a
// miss and never let a cache error fail the surrounding request.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yildirimsamet/simplestorage/internal/models"
)

// searchKeyPrefix namespaces every cached search result so invalidation can
// enumerate exactly the keys this package owns.
const searchKeyPrefix = "search:"

// DefaultTTL is how long a cached search result stays valid.
const DefaultTTL = 300 * time.Second

const opTimeout = 2 * time.Second

// Config holds redis connection details.
type Config struct {
	URL string        // e.g. redis://localhost:6379/0
	TTL time.Duration // zero means DefaultTTL
}

// Client wraps a redis connection scoped to the search namespace.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewClient connects to redis and verifies the connection with a ping.
func NewClient(cfg Config) (*Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Client{rdb: rdb, ttl: ttl}, nil
}

// Close releases the redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}

func searchKey(term string) string {
	return searchKeyPrefix + term
}

// GetSearch returns the cached result list for a lower-cased search term.
// A missing or expired key is a miss, not an error.
func (c *Client) GetSearch(term string) ([]models.Product, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	raw, err := c.rdb.Get(ctx, searchKey(term)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read search cache: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached search result: %w", err)
	}
	return products, true, nil
}

// PutSearch stores a result list under the lower-cased search term with the
// configured expiry.
func (c *Client) PutSearch(term string, products []models.Product) error {
	body, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode search result: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := c.rdb.Set(ctx, searchKey(term), body, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write search cache: %w", err)
	}
	return nil
}

// InvalidateSearch deletes every key in the search namespace. Any catalog
// write can change any search result, so invalidation takes the whole
// namespace at once.
func (c *Client) InvalidateSearch() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	iter := c.rdb.Scan(ctx, 0, searchKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan search cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete search cache keys: %w", err)
	}
	return nil
}
