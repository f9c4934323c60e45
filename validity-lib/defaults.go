// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package validity

import (
	"time"

	"validity-app-api/core/interfaces"
	"validity-app-api/infrastructure/cache/memory"
	"validity-app-api/infrastructure/cache/redis"
	"validity-app-api/infrastructure/cache/sqlite"
	httpInfra "validity-app-api/infrastructure/http/standard"
	"validity-app-api/infrastructure/logger/structured"
	"validity-app-api/pkg/config"
)

// DefaultHTTPClient creates an HTTP client for the search and inference APIs
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(30*time.Second, httpInfra.WithRateLimit(5, 5))
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultSQLiteCache creates a SQLite cache with the given file path
func DefaultSQLiteCache(filePath string) (interfaces.Cache, error) {
	return sqlite.NewSQLiteCache(filePath)
}

// DefaultLogger creates a text logger at warn level so library use stays quiet
func DefaultLogger() interfaces.Logger {
	return structured.NewLogger(structured.Config{Level: "warn", Format: "text"})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// CacheType represents the type of cache
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeSQLite CacheType = "sqlite"
	CacheTypeRedis  CacheType = "redis"
)

// CacheOption represents cache configuration options
type CacheOption struct {
	Type CacheType

	// FilePath is used by the SQLite cache
	FilePath string

	// Redis is used by the Redis cache
	Redis config.RedisConfig
}

// WithCacheOption creates a cache based on the provided options
func WithCacheOption(opt CacheOption) Option {
	return func(c *Config) error {
		switch opt.Type {
		case CacheTypeMemory:
			c.Cache = DefaultMemoryCache()
		case CacheTypeSQLite:
			if opt.FilePath == "" {
				opt.FilePath = "validity_cache.db"
			}
			cache, err := DefaultSQLiteCache(opt.FilePath)
			if err != nil {
				return NewError(ErrorTypeConfiguration, "failed to open sqlite cache").WithCause(err)
			}
			c.Cache = cache
		case CacheTypeRedis:
			cache, err := redis.NewRedisCache(opt.Redis)
			if err != nil {
				return NewError(ErrorTypeConfiguration, "failed to connect to redis").WithCause(err)
			}
			c.Cache = cache
		default:
			return NewError(ErrorTypeConfiguration, "invalid cache type "+string(opt.Type))
		}
		return nil
	}
}

// WithDefaultDependencies fills any unset dependency with its default
func WithDefaultDependencies() Option {
	return func(c *Config) error {
		if c.HTTPClient == nil {
			c.HTTPClient = DefaultHTTPClient()
		}
		if c.Cache == nil {
			c.Cache = DefaultMemoryCache()
		}
		if c.Logger == nil {
			c.Logger = DefaultLogger()
		}
		return nil
	}
}
