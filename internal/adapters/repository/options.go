package repository

import "time"

// Option applies a configuration option to the RedisStore.
type Option func(*RedisStore)

// WithKeyPrefix namespaces all keys written by the store.
func WithKeyPrefix(prefix string) Option {
	return func(s *RedisStore) {
		if prefix != "" {
			s.keyPrefix = prefix
		}
	}
}

// WithPoolSize sets the connection pool size.
func WithPoolSize(n int) Option {
	return func(s *RedisStore) {
		if n > 0 {
			s.poolSize = n
		}
	}
}

// WithDialTimeout sets the connect timeout.
func WithDialTimeout(d time.Duration) Option {
	return func(s *RedisStore) {
		if d > 0 {
			s.dialTimeout = d
		}
	}
}

// WithReadTimeout sets the per-command read timeout.
func WithReadTimeout(d time.Duration) Option {
	return func(s *RedisStore) {
		if d > 0 {
			s.readTimeout = d
		}
	}
}

// WithWriteTimeout sets the per-command write timeout.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *RedisStore) {
		if d > 0 {
			s.writeTimeout = d
		}
	}
}
