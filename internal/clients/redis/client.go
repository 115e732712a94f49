package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loyalty-server/internal/config"
	"loyalty-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key does not exist
var ErrCacheMiss = errors.New("cache miss")

var errNotInitialized = errors.New("redis client not initialized")

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. It returns a nil client when Redis is
// disabled; every method on a nil client reports errNotInitialized.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "host", Value: cfg.Host},
		observability.Field{Key: "port", Value: cfg.Port},
		observability.Field{Key: "db", Value: cfg.DB},
	), "successfully connected to Redis")

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	if c == nil {
		return nil
	}
	return c.client
}

// IsEnabled reports whether the client is connected
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if !c.IsEnabled() {
		return nil
	}
	return c.client.Close()
}

// Get returns the string value at key or ErrCacheMiss
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if !c.IsEnabled() {
		return nil, errNotInitialized
	}
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value at key with the given expiration
func (c *Client) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	if !c.IsEnabled() {
		return errNotInitialized
	}
	if err := c.client.Set(ctx, key, value, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Del deletes one or more keys
func (c *Client) Del(ctx context.Context, keys ...string) error {
	if !c.IsEnabled() {
		return errNotInitialized
	}
	return c.client.Del(ctx, keys...).Err()
}

// Ping checks connectivity
func (c *Client) Ping(ctx context.Context) error {
	if !c.IsEnabled() {
		return errNotInitialized
	}
	return c.client.Ping(ctx).Err()
}

// acquireScript trims the window, then adds the member only when the window
// holds fewer than the limit. Returns {allowed, count before add, oldest ms}.
var acquireScript = redis.NewScript(`
local key = KEYS[1]
local at = tonumber(ARGV[1])
local since = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
redis.call('ZREMRANGEBYSCORE', key, '-inf', '(' .. since)
local count = redis.call('ZCARD', key)
local allowed = 0
if count < limit then
	redis.call('ZADD', key, at, ARGV[4])
	redis.call('PEXPIRE', key, ARGV[5])
	allowed = 1
end
local oldest = 0
local first = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
if #first > 0 then
	oldest = tonumber(first[2])
end
return {allowed, count, oldest}
`)

// WindowAcquire drops members of the sorted set at key scored before since
// and records member at time at if fewer than limit remain. The check and the
// add run as one script, so concurrent callers never overshoot limit. It
// returns the count before the add and the time of the oldest member.
func (c *Client) WindowAcquire(ctx context.Context, key, member string, at, since time.Time, limit int64, ttl time.Duration) (bool, int64, time.Time, error) {
	if !c.IsEnabled() {
		return false, 0, time.Time{}, errNotInitialized
	}

	res, err := acquireScript.Run(ctx, c.client, []string{key},
		at.UnixMilli(), since.UnixMilli(), limit, member, ttl.Milliseconds()).Int64Slice()
	if err != nil {
		return false, 0, time.Time{}, fmt.Errorf("failed to acquire window %s: %w", key, err)
	}
	if len(res) != 3 {
		return false, 0, time.Time{}, fmt.Errorf("failed to acquire window %s: unexpected reply %v", key, res)
	}

	var oldest time.Time
	if res[2] > 0 {
		oldest = time.UnixMilli(res[2])
	}
	return res[0] == 1, res[1], oldest, nil
}
