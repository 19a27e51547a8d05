// Package factory selects and caches the storage provider for the runtime
// platform. Exactly one provider instance exists per process; tests reset
// the cache between cases.
package factory

import (
	"sync"

	"github.com/beholdr/grimoire/internal/errors"
	redisclient "github.com/beholdr/grimoire/internal/redis"
	"github.com/beholdr/grimoire/internal/pkg/clock"
	"github.com/beholdr/grimoire/internal/pkg/idgen"
	"github.com/beholdr/grimoire/internal/storage"
	"github.com/beholdr/grimoire/internal/storage/fs"
	"github.com/beholdr/grimoire/internal/storage/kv"
)

// Platform identifies which concrete backend to build
type Platform string

// Supported platforms
const (
	// PlatformKV stores everything in a key-value store
	PlatformKV Platform = "kv"
	// PlatformFS stores everything on the local file system
	PlatformFS Platform = "fs"
)

// Config contains configuration for provider construction
type Config struct {
	Platform Platform

	// RedisClient backs the kv platform. If nil, one is built from
	// RedisEndpoint.
	RedisClient   redisclient.Client
	RedisEndpoint string

	// DataDir backs the fs platform
	DataDir string

	// Optional; real implementations are used when nil
	Clock clock.Clock
	IDGen idgen.Generator
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	switch cfg.Platform {
	case PlatformKV:
		if cfg.RedisClient == nil && cfg.RedisEndpoint == "" {
			return errors.InvalidArgument("kv platform requires a redis client or endpoint")
		}
	case PlatformFS:
		if cfg.DataDir == "" {
			return errors.InvalidArgument("fs platform requires a data directory")
		}
	default:
		return errors.InvalidArgumentf("unknown platform %q", string(cfg.Platform))
	}
	return nil
}

var (
	mu     sync.Mutex
	cached storage.Provider
)

// Get returns the process-wide provider, constructing it on first call.
// Subsequent calls return the cached instance regardless of cfg.
func Get(cfg *Config) (storage.Provider, error) {
	mu.Lock()
	defer mu.Unlock()

	if cached != nil {
		return cached, nil
	}

	provider, err := build(cfg)
	if err != nil {
		return nil, err
	}

	cached = provider
	return cached, nil
}

// Reset clears the cached provider so the next Get constructs fresh.
// For test isolation.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cached = nil
}

func build(cfg *Config) (storage.Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var backend storage.Backend
	switch cfg.Platform {
	case PlatformKV:
		client := cfg.RedisClient
		if client == nil {
			c, err := redisclient.NewClient(cfg.RedisEndpoint, nil)
			if err != nil {
				return nil, errors.Wrap(err, "failed to create redis client")
			}
			client = c
		}
		b, err := kv.New(&kv.Config{Client: client})
		if err != nil {
			return nil, err
		}
		backend = b
	case PlatformFS:
		b, err := fs.New(&fs.Config{DataDir: cfg.DataDir})
		if err != nil {
			return nil, err
		}
		backend = b
	}

	return storage.New(&storage.Config{
		Backend: backend,
		Clock:   cfg.Clock,
		IDGen:   cfg.IDGen,
	})
}
