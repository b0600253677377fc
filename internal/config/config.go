// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import "context"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address the JSON-RPC endpoint binds
	// to, e.g. ":5555".
	Addr string `koanf:"addr"`

	// RedisAddr is the token store server address, e.g. "localhost:6379".
	RedisAddr string `koanf:"redis_addr"`

	// RedisPassword authenticates against the token store (optional).
	RedisPassword string `koanf:"redis_password"`

	// RedisDB selects the Redis logical database.
	RedisDB int `koanf:"redis_db"`

	// RedisKeyPrefix namespaces the token keys.
	RedisKeyPrefix string `koanf:"redis_key_prefix"`

	// RedisPoolSize bounds the Redis connection pool.
	RedisPoolSize int `koanf:"redis_pool_size"`

	// SpotifyBaseURL points at the claim evaluator API.
	SpotifyBaseURL string `koanf:"spotify_base_url"`

	// SpotifyTimeoutMS bounds a single evaluator request.
	SpotifyTimeoutMS int `koanf:"spotify_timeout_ms"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use (e.g. loading
// from env/files) and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":5555",
		RedisAddr:        "localhost:6379",
		RedisPassword:    "",
		RedisDB:          0,
		RedisKeyPrefix:   "soundproof:token:",
		RedisPoolSize:    10,
		SpotifyBaseURL:   "https://api.spotify.com",
		SpotifyTimeoutMS: 10_000,
	}
}
