package config

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if SOUNDPROOF_CONFIG is set
//  3. env (prefix SOUNDPROOF_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SOUNDPROOF_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: SOUNDPROOF_ADDR, SOUNDPROOF_REDIS_ADDR, ...
	// Map env keys like SOUNDPROOF_REDIS_ADDR -> redis_addr (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("SOUNDPROOF_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "soundproof_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.RedisAddr == "" {
		return nil, errors.New("redis_addr must not be empty")
	}
	if cfg.SpotifyBaseURL == "" {
		return nil, errors.New("spotify_base_url must not be empty")
	}
	return &cfg, nil
}
