package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TATR0/bot-service/internal/ports/cache"
	"github.com/redis/go-redis/v9"
)

// ErrKeyNotFound ключа нет или истёк TTL
var ErrKeyNotFound = errors.New("key not found")

var _ cache.Cache = (*Client)(nil)

// Client обёртка над redis.Client, реализует cache.Cache
type Client struct {
	client redis.UniversalClient
}

// NewClient создаёт новый Redis-клиент
func NewClient(client redis.UniversalClient) *Client {
	return &Client{
		client: client,
	}
}

// Get получает значение по ключу
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

// Set устанавливает значение с TTL
func (c *Client) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Ping для readiness
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close закрывает подключение к кэшу
func (c *Client) Close() error {
	return c.client.Close()
}
