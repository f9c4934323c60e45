// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Layers defaults, an optional YAML file, .env files and the process environment

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	coreconfig "validity-app-api/core/config"
	"validity-app-api/core/domain"
	apperrors "validity-app-api/core/errors"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigPathEnv names the environment variable pointing at the optional YAML file
const ConfigPathEnv = "VALIDITY_CONFIG"

// Credential environment variables
const (
	SearchAPIKeyEnv    = "SERPAPI_API_KEY"
	SummarizerTokenEnv = "HF_TOKEN"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Cache      CacheConfig      `yaml:"cache"`
	Logging    LoggingConfig    `yaml:"logging"`
	Evaluation EvaluationSettings `yaml:"evaluation"`
	Reputation ReputationConfig `yaml:"reputation"`
	Fetch      FetchConfig      `yaml:"fetch"`
	HTTP       HTTPConfig       `yaml:"http"`
	Search     SearchConfig     `yaml:"search"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	RateLimit  RateLimitConfig  `yaml:"rateLimit"`

	// Credentials are only read from the environment
	Credentials Credentials `yaml:"-"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `yaml:"port"`

	// ShutdownTimeoutSeconds bounds graceful shutdown
	ShutdownTimeoutSeconds int `yaml:"shutdownTimeoutSeconds"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite/none)
	Type string `yaml:"type"`

	Redis  RedisConfig  `yaml:"redis"`
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address   string `yaml:"address"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"keyPrefix"`
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls the structured logger
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// EvaluationSettings holds scoring and summary policy defaults as plain strings
type EvaluationSettings struct {
	Scale                string `yaml:"scale"`
	Signals              string `yaml:"signals"`
	FailOnMissingContent bool   `yaml:"failOnMissingContent"`
	LengthPolicy         string `yaml:"lengthPolicy"`
	BatchConcurrency     int    `yaml:"batchConcurrency"`
}

// Resolve converts the settings into the typed configuration used by the services
func (e EvaluationSettings) Resolve() (coreconfig.EvaluationConfig, error) {
	scale, err := domain.ParseScaleMode(e.Scale)
	if err != nil {
		return coreconfig.EvaluationConfig{}, err
	}
	preset, err := domain.ParseSignalPreset(e.Signals)
	if err != nil {
		return coreconfig.EvaluationConfig{}, err
	}
	policy, err := domain.ParseLengthPolicy(e.LengthPolicy)
	if err != nil {
		return coreconfig.EvaluationConfig{}, err
	}

	return coreconfig.NewEvaluationConfig(
		coreconfig.WithScale(scale),
		coreconfig.WithSignals(preset),
		coreconfig.WithLengthPolicy(policy),
		coreconfig.WithFailOnMissingContent(e.FailOnMissingContent),
		coreconfig.WithBatchConcurrency(e.BatchConcurrency),
	), nil
}

// ReputationConfig adds or overrides domain trust values on the ten-point scale
type ReputationConfig struct {
	Entries map[string]float64 `yaml:"entries"`
}

// FetchConfig controls page retrieval
type FetchConfig struct {
	UserAgent      string `yaml:"userAgent"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// HTTPConfig controls the outbound API client
type HTTPConfig struct {
	TimeoutSeconds    int     `yaml:"timeoutSeconds"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Burst             int     `yaml:"burst"`
}

// SearchConfig controls the search provider
type SearchConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// SummarizerConfig controls the summarization backend
type SummarizerConfig struct {
	// Backend is "huggingface" or "lead"
	Backend  string `yaml:"backend"`
	Endpoint string `yaml:"endpoint"`
}

// RateLimitConfig controls inbound per-client rate limiting
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Burst             int     `yaml:"burst"`
}

// Credentials are secrets resolved from the environment
type Credentials struct {
	SearchAPIKey    string
	SummarizerToken string
}

// Missing lists the environment variables of absent credentials
func (c Credentials) Missing() []string {
	var missing []string
	if c.SearchAPIKey == "" {
		missing = append(missing, SearchAPIKeyEnv)
	}
	if c.SummarizerToken == "" {
		missing = append(missing, SummarizerTokenEnv)
	}
	return missing
}

// RequireSearch returns a configuration error when the search key is absent
func (c Credentials) RequireSearch() error {
	if c.SearchAPIKey == "" {
		return &apperrors.ConfigurationError{Key: SearchAPIKeyEnv, Message: "search API key is not set"}
	}
	return nil
}

// RequireSummarizer returns a configuration error when the summarizer token is absent
func (c Credentials) RequireSummarizer() error {
	if c.SummarizerToken == "" {
		return &apperrors.ConfigurationError{Key: SummarizerTokenEnv, Message: "summarization token is not set"}
	}
	return nil
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                   "8000",
			ShutdownTimeoutSeconds: 10,
		},
		Cache: CacheConfig{
			Type: "memory",
			Redis: RedisConfig{
				Address:   "localhost:6379",
				KeyPrefix: "validity:",
			},
			SQLite: SQLiteConfig{Path: "validity_cache.db"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Evaluation: EvaluationSettings{
			Scale:            "ten",
			Signals:          "placeholder",
			LengthPolicy:     "loose",
			BatchConcurrency: 10,
		},
		Fetch: FetchConfig{
			UserAgent:      "Mozilla/5.0",
			TimeoutSeconds: 5,
		},
		HTTP: HTTPConfig{
			TimeoutSeconds:    30,
			RequestsPerSecond: 5,
			Burst:             5,
		},
		Search: SearchConfig{
			Endpoint: "https://serpapi.com/search",
		},
		Summarizer: SummarizerConfig{
			Backend:  "huggingface",
			Endpoint: "https://api-inference.huggingface.co/models/facebook/bart-large-cnn",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
	}
}

// Load reads .env files, the optional YAML file named by VALIDITY_CONFIG and the
// environment, in increasing order of precedence.
func Load(envFiles ...string) (*Config, error) {
	// A missing .env file is normal outside development
	_ = godotenv.Load(envFiles...)

	cfg := Default()
	if path := os.Getenv(ConfigPathEnv); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadFromEnv loads configuration from defaults and environment variables only
func LoadFromEnv() (*Config, error) {
	cfg := Default()
	cfg.applyEnv()
	return cfg, nil
}

// mergeFile overlays YAML onto the current values; absent keys keep their value
func (c *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnvOrDefault("PORT", c.Server.Port)
	c.Server.ShutdownTimeoutSeconds = getEnvAsIntOrDefault("SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeoutSeconds)

	c.Cache.Type = getEnvOrDefault("CACHE_TYPE", c.Cache.Type)
	c.Cache.Redis.Address = getEnvOrDefault("REDIS_ADDRESS", c.Cache.Redis.Address)
	c.Cache.Redis.Password = getEnvOrDefault("REDIS_PASSWORD", c.Cache.Redis.Password)
	c.Cache.Redis.DB = getEnvAsIntOrDefault("REDIS_DB", c.Cache.Redis.DB)
	c.Cache.Redis.KeyPrefix = getEnvOrDefault("REDIS_KEY_PREFIX", c.Cache.Redis.KeyPrefix)
	c.Cache.SQLite.Path = getEnvOrDefault("SQLITE_PATH", c.Cache.SQLite.Path)

	c.Logging.Level = getEnvOrDefault("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getEnvOrDefault("LOG_FORMAT", c.Logging.Format)
	c.Logging.File = getEnvOrDefault("LOG_FILE", c.Logging.File)

	c.Evaluation.Scale = getEnvOrDefault("SCORE_SCALE", c.Evaluation.Scale)
	c.Evaluation.Signals = getEnvOrDefault("SIGNAL_PRESET", c.Evaluation.Signals)
	c.Evaluation.FailOnMissingContent = getEnvAsBoolOrDefault("FAIL_ON_MISSING_CONTENT", c.Evaluation.FailOnMissingContent)
	c.Evaluation.LengthPolicy = getEnvOrDefault("SUMMARY_LENGTH_POLICY", c.Evaluation.LengthPolicy)
	c.Evaluation.BatchConcurrency = getEnvAsIntOrDefault("BATCH_CONCURRENCY", c.Evaluation.BatchConcurrency)

	c.Fetch.UserAgent = getEnvOrDefault("FETCH_USER_AGENT", c.Fetch.UserAgent)
	c.Fetch.TimeoutSeconds = getEnvAsIntOrDefault("FETCH_TIMEOUT", c.Fetch.TimeoutSeconds)

	c.HTTP.TimeoutSeconds = getEnvAsIntOrDefault("HTTP_TIMEOUT", c.HTTP.TimeoutSeconds)
	c.HTTP.RequestsPerSecond = getEnvAsFloatOrDefault("HTTP_RPS", c.HTTP.RequestsPerSecond)

	c.Search.Endpoint = getEnvOrDefault("SEARCH_ENDPOINT", c.Search.Endpoint)
	c.Summarizer.Backend = getEnvOrDefault("SUMMARIZER_BACKEND", c.Summarizer.Backend)
	c.Summarizer.Endpoint = getEnvOrDefault("SUMMARIZER_ENDPOINT", c.Summarizer.Endpoint)

	c.RateLimit.RequestsPerSecond = getEnvAsFloatOrDefault("RATE_LIMIT_RPS", c.RateLimit.RequestsPerSecond)
	c.RateLimit.Burst = getEnvAsIntOrDefault("RATE_LIMIT_BURST", c.RateLimit.Burst)

	c.Credentials = Credentials{
		SearchAPIKey:    strings.TrimSpace(os.Getenv(SearchAPIKeyEnv)),
		SummarizerToken: strings.TrimSpace(os.Getenv(SummarizerTokenEnv)),
	}
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}
	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Server.Port)
	}

	switch c.Cache.Type {
	case "memory", "none":
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case "sqlite":
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'redis', 'sqlite' or 'none'")
	}

	if _, err := c.Evaluation.Resolve(); err != nil {
		return err
	}

	if c.Evaluation.BatchConcurrency < 1 {
		return errors.New("batch concurrency must be at least 1")
	}

	switch c.Summarizer.Backend {
	case "huggingface", "lead":
	default:
		return fmt.Errorf("invalid summarizer backend %q", c.Summarizer.Backend)
	}

	for d, score := range c.Reputation.Entries {
		if score < 0 || score > 10 {
			return fmt.Errorf("reputation for %s must be within 0-10, got %v", d, score)
		}
	}

	return nil
}
