package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// DefaultRedisTimeout bounds each Redis call when no timeout is configured.
const DefaultRedisTimeout = 2 * time.Second

// RedisCache stores JSON-encoded values in Redis. Errors are logged and
// reported as misses so callers can treat it like MemoryCache. Every call is
// bounded by the caller's context and the cache timeout.
type RedisCache[V any] struct {
	client   *redis.Client
	prefix   string
	timeout  time.Duration
	logger   *slog.Logger
	inflight singleflight.Group
}

// NewRedisCache connects to the Redis server at url
// (redis://[:password@]host:port/db). Keys are stored under prefix.
func NewRedisCache[V any](url, prefix string, logger *slog.Logger) (*RedisCache[V], error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewRedisCacheWithOptions[V](opt, prefix, logger), nil
}

// NewRedisCacheWithOptions creates a RedisCache from redis.Options.
func NewRedisCacheWithOptions[V any](
	opt *redis.Options,
	prefix string,
	logger *slog.Logger,
) *RedisCache[V] {
	if logger == nil {
		logger = slog.Default()
	}
	opt.ContextTimeoutEnabled = true
	return &RedisCache[V]{
		client:  redis.NewClient(opt),
		prefix:  prefix,
		timeout: DefaultRedisTimeout,
		logger:  logger.With("cache", "redis"),
	}
}

// WithTimeout sets the per-call timeout; non-positive values keep the
// current one.
func (r *RedisCache[V]) WithTimeout(d time.Duration) *RedisCache[V] {
	if d > 0 {
		r.timeout = d
	}
	return r
}

func (r *RedisCache[V]) key(key string) string {
	return r.prefix + key
}

// Ping checks the connection.
func (r *RedisCache[V]) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Get decodes the value under key. Concurrent lookups of one key share a
// single round trip.
func (r *RedisCache[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V
	raw, err, _ := r.inflight.Do(key, func() (any, error) {
		ctx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()
		return r.client.Get(ctx, r.key(key)).Bytes()
	})
	if errors.Is(err, redis.Nil) {
		r.logger.DebugContext(ctx, "Redis cache miss", "key", key)
		return zero, false
	}
	if err != nil {
		r.logger.ErrorContext(ctx, "Redis cache get error", "key", key, "error", err)
		return zero, false
	}
	var v V
	if err := json.Unmarshal(raw.([]byte), &v); err != nil {
		r.logger.ErrorContext(ctx, "Redis cache unmarshal error", "key", key, "error", err)
		return zero, false
	}
	r.logger.DebugContext(ctx, "Redis cache hit", "key", key)
	return v, true
}

func (r *RedisCache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.ErrorContext(ctx, "Redis cache marshal error", "key", key, "error", err)
		return
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	if err := r.client.Set(ctx, r.key(key), data, ttl).Err(); err != nil {
		r.logger.ErrorContext(ctx, "Redis cache set error", "key", key, "error", err)
		return
	}
	r.logger.DebugContext(ctx, "Redis cache set", "key", key, "ttl", ttl)
}

func (r *RedisCache[V]) Delete(ctx context.Context, key string) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.ErrorContext(ctx, "Redis cache delete error", "key", key, "error", err)
	}
}

// Close closes the client connection pool.
func (r *RedisCache[V]) Close() error {
	return r.client.Close()
}
