// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Satisfies the core Cache interface with TTL support

package gocache

import (
	"context"
	"errors"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// ErrCacheMiss is the error returned when a key is not found in the cache.
var ErrCacheMiss = errors.New("cache: key not found")

// Client implements the Cache interface on top of go-cache
type Client struct {
	cache *cache.Cache
	log   *logrus.Logger
}

// NewClient creates a cache client. cleanupInterval controls how often
// expired entries are purged.
func NewClient(defaultExpiration, cleanupInterval time.Duration) *Client {
	return &Client{
		cache: cache.New(defaultExpiration, cleanupInterval),
		log:   logrus.New(),
	}
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, found := c.cache.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}

	data, ok := value.([]byte)
	if !ok {
		c.log.WithFields(logrus.Fields{
			"key": key,
		}).Error("Failed to assert type of cached value")
		return nil, ErrCacheMiss
	}

	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value in the cache with the given TTL; a zero TTL stores
// the value until explicitly deleted
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	if ttl == 0 {
		ttl = cache.NoExpiration
	}

	c.cache.Set(key, valueCopy, ttl)
	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.cache.Delete(key)
	return nil
}
