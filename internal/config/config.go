// Package config loads dexboard's process configuration: defaults, then an
// optional YAML file, then DEXBOARD_* environment variables.
package config

import (
	"io"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dexboard/internal/errors"
)

// Snapshot formats
const (
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
)

// Log formats
const (
	LogText = "text"
	LogJSON = "json"
)

// Config is the full process configuration
type Config struct {
	Data   DataConfig   `yaml:"data"`
	API    APIConfig    `yaml:"api"`
	Cache  CacheConfig  `yaml:"cache"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// DataConfig says where the snapshot lives
type DataConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// APIConfig tunes the crawl
type APIConfig struct {
	BaseURL           string        `yaml:"base_url"`
	MaxID             int           `yaml:"max_id"`
	Concurrency       int           `yaml:"concurrency"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	HTTPTimeout       time.Duration `yaml:"http_timeout"`
}

// CacheConfig enables the Redis response cache when RedisAddr is set
type CacheConfig struct {
	RedisAddr string        `yaml:"redis_addr"`
	TTL       time.Duration `yaml:"ttl"`
}

// ServerConfig holds listen addresses
type ServerConfig struct {
	GRPCPort    int    `yaml:"grpc_port"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// LogConfig selects the slog handler
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Path:   "data/creatures.csv",
			Format: FormatCSV,
		},
		API: APIConfig{
			BaseURL:           "https://pokeapi.co/api/v2/",
			MaxID:             250,
			Concurrency:       4,
			RequestsPerSecond: 2,
			HTTPTimeout:       30 * time.Second,
		},
		Cache: CacheConfig{
			TTL: 7 * 24 * time.Hour,
		},
		Server: ServerConfig{
			GRPCPort:    50051,
			MetricsAddr: ":9090",
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogText,
		},
	}
}

// Load builds the configuration from defaults, the file at path (skipped
// when path is empty or the file does not exist) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.loadEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read config file").
			WithMeta("path", path)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config file").
			WithMeta("path", path)
	}

	return nil
}

// loadEnv applies DEXBOARD_* overrides. Values that do not parse are ignored.
func (c *Config) loadEnv(lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := lookup(key); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = f
			}
		}
	}
	duration := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok {
			if d, err := time.ParseDuration(v); err == nil {
				*dst = d
			}
		}
	}

	str("DEXBOARD_DATA_PATH", &c.Data.Path)
	str("DEXBOARD_DATA_FORMAT", &c.Data.Format)
	str("DEXBOARD_API_BASE_URL", &c.API.BaseURL)
	num("DEXBOARD_API_MAX_ID", &c.API.MaxID)
	num("DEXBOARD_API_CONCURRENCY", &c.API.Concurrency)
	float("DEXBOARD_API_REQUESTS_PER_SECOND", &c.API.RequestsPerSecond)
	duration("DEXBOARD_API_HTTP_TIMEOUT", &c.API.HTTPTimeout)
	str("DEXBOARD_REDIS_ADDR", &c.Cache.RedisAddr)
	duration("DEXBOARD_CACHE_TTL", &c.Cache.TTL)
	num("DEXBOARD_GRPC_PORT", &c.Server.GRPCPort)
	str("DEXBOARD_METRICS_ADDR", &c.Server.MetricsAddr)
	str("DEXBOARD_LOG_LEVEL", &c.Log.Level)
	str("DEXBOARD_LOG_FORMAT", &c.Log.Format)
}

// Validate checks every section
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Data.Path == "" {
		vb.RequiredField("data.path")
	}
	if c.Data.Format != FormatCSV && c.Data.Format != FormatSQLite {
		vb.Fieldf("data.format", "must be %q or %q", FormatCSV, FormatSQLite)
	}

	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		vb.Field("api.base_url", "must be an absolute URL")
	}
	if c.API.MaxID < 1 {
		vb.Field("api.max_id", "must be at least 1")
	}
	if c.API.Concurrency < 1 {
		vb.Field("api.concurrency", "must be at least 1")
	}
	if c.API.RequestsPerSecond <= 0 {
		vb.Field("api.requests_per_second", "must be positive")
	}
	if c.API.HTTPTimeout <= 0 {
		vb.Field("api.http_timeout", "must be positive")
	}

	if c.Cache.TTL <= 0 {
		vb.Field("cache.ttl", "must be positive")
	}

	if c.Server.GRPCPort < 1 || c.Server.GRPCPort > 65535 {
		vb.Field("server.grpc_port", "must be a valid port")
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		vb.Field("log.level", "must be debug, info, warn or error")
	}
	if c.Log.Format != LogText && c.Log.Format != LogJSON {
		vb.Fieldf("log.format", "must be %q or %q", LogText, LogJSON)
	}

	return vb.Build()
}

// Logger builds the slog logger described by c
func (c LogConfig) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.Format == LogJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return level, errors.InvalidArgumentf("unknown level %q", s)
	}
	return level, nil
}
