package repository

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/okian/soundproof/pkg/metrics"
)

// Default Redis client configuration.
const (
	defaultKeyPrefix    = "soundproof:token:"
	defaultPoolSize     = 10
	defaultDialTimeout  = 5 * time.Second
	defaultReadTimeout  = 3 * time.Second
	defaultWriteTimeout = 3 * time.Second
)

// redisClient is the subset of redis.Client commands the store issues.
// Narrowing the dependency keeps the store testable against a stub client.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisStore implements TokenStore on a Redis server. Tokens are stored as
// plain string values under a namespaced key; atomicity of individual
// get/set/del operations is delegated to Redis itself.
type RedisStore struct {
	client    redisClient
	keyPrefix string
	closed    atomic.Bool

	poolSize     int
	dialTimeout  time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
}

var _ TokenStore = (*RedisStore)(nil)

// NewRedisStore connects to the Redis server at addr and verifies the
// connection with a ping before returning.
func NewRedisStore(ctx context.Context, addr, password string, db int, opts ...Option) (*RedisStore, error) {
	if addr == "" {
		return nil, errors.New("redis address must not be empty")
	}

	s := &RedisStore{
		keyPrefix:    defaultKeyPrefix,
		poolSize:     defaultPoolSize,
		dialTimeout:  defaultDialTimeout,
		readTimeout:  defaultReadTimeout,
		writeTimeout: defaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     s.poolSize,
		DialTimeout:  s.dialTimeout,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	})

	if err := s.client.Ping(ctx).Err(); err != nil {
		_ = s.client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return s, nil
}

// Get returns the token stored for id, or ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, id string) (string, error) {
	if s.closed.Load() {
		return "", ErrClosed
	}
	start := time.Now()
	val, err := s.client.Get(ctx, s.key(id)).Result()
	metrics.RecordStoreOp("get", err == nil || errors.Is(err, redis.Nil), time.Since(start))
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return "", fmt.Errorf("redis get %q: %w", id, err)
	}
	return val, nil
}

// Put stores token under id with no expiry.
func (s *RedisStore) Put(ctx context.Context, id, token string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	start := time.Now()
	err := s.client.Set(ctx, s.key(id), token, 0).Err()
	metrics.RecordStoreOp("put", err == nil, time.Since(start))
	if err != nil {
		return fmt.Errorf("redis set %q: %w", id, err)
	}
	return nil
}

// Delete removes the association for id. Absent ids succeed.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	start := time.Now()
	err := s.client.Del(ctx, s.key(id)).Err()
	metrics.RecordStoreOp("delete", err == nil, time.Since(start))
	if err != nil {
		return fmt.Errorf("redis del %q: %w", id, err)
	}
	return nil
}

// Close releases the connection pool. Later calls on the store return
// ErrClosed.
func (s *RedisStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("redis close: %w", err)
	}
	return nil
}

func (s *RedisStore) key(id string) string {
	return s.keyPrefix + id
}
