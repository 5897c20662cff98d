package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"voice-crm/internal/config"
	"voice-crm/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix     = "voice-crm:lock:"
	lockRetryInterval = 50 * time.Millisecond
	windowKeyPrefix   = "voice-crm:rl:"
)

// defaultLockTTL is three times the default CRM timeout
const defaultLockTTL = 90 * time.Second

var ErrLockNotAcquired = errors.New("lock not acquired")

// releaseScript deletes the lock only if it still carries our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// windowScript trims the sorted set to the window, then records the hit unless
// the limit is already reached. Returns {recorded, count, oldest score}.
var windowScript = redis.NewScript(`
redis.call("ZREMRANGEBYSCORE", KEYS[1], "-inf", ARGV[1])
local count = redis.call("ZCARD", KEYS[1])
if count >= tonumber(ARGV[3]) then
	local oldest = redis.call("ZRANGE", KEYS[1], 0, 0, "WITHSCORES")
	return {0, count, oldest[2] or "0"}
end
redis.call("ZADD", KEYS[1], ARGV[2], ARGV[4])
redis.call("PEXPIRE", KEYS[1], ARGV[5])
return {1, count + 1, "0"}
`)

// WindowResult is the state of a sliding window after a hit
type WindowResult struct {
	Recorded bool
	Count    int
	Oldest   time.Time
}

// Client wraps the Redis client with observability and provides a
// distributed keyed lock
type Client struct {
	client  *redis.Client
	logger  *observability.Logger
	lockTTL time.Duration
}

// NewClient creates a new Redis client. It returns nil when Redis is not configured.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled() {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "addr", Value: cfg.Addr},
		observability.Field{Key: "db", Value: cfg.DB},
	), "successfully connected to Redis")

	return newClient(client, cfg.LockTTL, logger), nil
}

func newClient(client *redis.Client, lockTTL time.Duration, logger *observability.Logger) *Client {
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}
	return &Client{client: client, logger: logger, lockTTL: lockTTL}
}

// Lock acquires a lock on key shared by every replica, polling until it is
// free or ctx is done. The lock expires after the configured TTL if the
// holder dies.
func (c *Client) Lock(ctx context.Context, key string) (func(), error) {
	if c == nil || c.client == nil {
		return nil, fmt.Errorf("Redis client not initialized")
	}

	redisKey := lockKeyPrefix + key
	token := uuid.NewString()
	ctx = observability.WithFields(ctx, observability.Field{Key: "lock_key", Value: redisKey})

	ticker := time.NewTicker(lockRetryInterval)
	defer ticker.Stop()

	for {
		ok, err := c.client.SetNX(ctx, redisKey, token, c.lockTTL).Result()
		if err != nil {
			c.logger.Error(ctx, "failed to acquire redis lock", err)
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			return func() { c.unlock(redisKey, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %w", ErrLockNotAcquired, key, ctx.Err())
		case <-ticker.C:
		}
	}
}

// unlock uses a fresh context so a cancelled request still releases its lock
func (c *Client) unlock(redisKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := releaseScript.Run(ctx, c.client, []string{redisKey}, token).Err(); err != nil {
		c.logger.Error(observability.WithFields(ctx, observability.Field{Key: "lock_key", Value: redisKey}), "failed to release redis lock", err)
	}
}

// WindowHit records a hit at now in the sliding window named key, unless limit
// hits already fall inside the window
func (c *Client) WindowHit(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (WindowResult, error) {
	if c == nil || c.client == nil {
		return WindowResult{}, fmt.Errorf("Redis client not initialized")
	}

	nowMs := now.UnixMilli()
	res, err := windowScript.Run(ctx, c.client, []string{windowKeyPrefix + key},
		nowMs-window.Milliseconds(),
		nowMs,
		limit,
		fmt.Sprintf("%d-%s", nowMs, uuid.NewString()[:8]),
		(2 * window).Milliseconds(),
	).Slice()
	if err != nil {
		return WindowResult{}, fmt.Errorf("failed to record window hit for %s: %w", key, err)
	}
	if len(res) != 3 {
		return WindowResult{}, fmt.Errorf("unexpected window script reply: %v", res)
	}

	recorded, _ := res[0].(int64)
	count, _ := res[1].(int64)
	result := WindowResult{Recorded: recorded == 1, Count: int(count)}
	if score, ok := res[2].(string); ok && score != "0" {
		if ms, err := strconv.ParseFloat(score, 64); err == nil {
			result.Oldest = time.UnixMilli(int64(ms))
		}
	}
	return result, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}
