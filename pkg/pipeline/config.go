package pipeline

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stacklayout/pkg/cache"
	"github.com/matzehuels/stacklayout/pkg/errors"
)

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// DefaultAddr is the default listen address of the API server.
const DefaultAddr = ":8080"

// Config is the contents of a stacklayout TOML config file:
//
//	[layout]
//	node_width = 120
//	formats = ["json", "svg"]
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//	prefix = "staging:"
//
//	[server]
//	addr = ":9090"
//	request_timeout = "30s"
type Config struct {
	Layout Options      `toml:"layout"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend  string `toml:"backend"`   // file (default), redis or none
	Dir      string `toml:"dir"`       // file backend directory
	RedisURL string `toml:"redis_url"` // redis backend address
	Prefix   string `toml:"prefix"`    // key prefix, see cache.ScopedKeyer
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string        `toml:"addr"`
	RequestTimeout time.Duration `toml:"request_timeout"`
	MaxBodyBytes   int64         `toml:"max_body_bytes"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Cache: CacheConfig{Backend: CacheFile},
		Server: ServerConfig{
			Addr:           DefaultAddr,
			RequestTimeout: 30 * time.Second,
			MaxBodyBytes:   8 << 20,
		},
	}
}

// LoadConfig reads a TOML config file over [DefaultConfig]. Unknown keys
// are rejected so typos do not go unnoticed.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the cache backend and layout options.
func (c Config) Validate() error {
	if !slices.Contains([]string{CacheFile, CacheRedis, CacheNone}, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "cache backend must be file, redis or none, got %q", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheRedis && c.Cache.RedisURL == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache backend redis needs redis_url")
	}
	if c.Server.RequestTimeout < 0 || c.Server.MaxBodyBytes < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server limits must not be negative")
	}
	layout := c.Layout
	if err := layout.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[layout]")
	}
	return nil
}

// OpenCache opens the configured cache backend.
func (c CacheConfig) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch c.Backend {
	case CacheNone:
		return cache.NewNullCache(), nil
	case CacheRedis:
		rc, err := cache.NewRedisCache(ctx, c.RedisURL)
		if err != nil {
			return nil, err
		}
		return rc, nil
	case CacheFile, "":
		if c.Dir == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "file cache needs a directory")
		}
		fc, err := cache.NewFileCache(c.Dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Backend)
}

// Keyer returns the key deriver for the configured prefix.
func (c CacheConfig) Keyer() cache.Keyer {
	if c.Prefix == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), c.Prefix)
}
