package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "finserv.yaml"

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
// YAML file is optional; missing file is not an error.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom returns a Config loaded from the given YAML path using the
// hierarchy: defaults < YAML < ENV. The YAML file is optional.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	loadEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}

	return &cfg, nil
}

// loadYAML reads the YAML file and unmarshals it over cfg.
// Returns nil if the file does not exist.
func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is validated by caller
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// loadEnv overlays environment variables onto cfg.
// Only non-empty env values override the current config.
func loadEnv(cfg *Config) {
	setString(&cfg.Server.Port, "FINSERV_PORT")
	setString(&cfg.Server.CORSOrigin, "FINSERV_CORS_ORIGIN")
	setString(&cfg.Postgres.DSN, "DATABASE_URL")
	setInt32(&cfg.Postgres.MaxConns, "FINSERV_PG_MAX_CONNS")
	setInt32(&cfg.Postgres.MinConns, "FINSERV_PG_MIN_CONNS")
	setDuration(&cfg.Postgres.MaxConnLifetime, "FINSERV_PG_MAX_CONN_LIFETIME")
	setDuration(&cfg.Postgres.MaxConnIdleTime, "FINSERV_PG_MAX_CONN_IDLE_TIME")
	setDuration(&cfg.Postgres.HealthCheck, "FINSERV_PG_HEALTH_CHECK")
	setString(&cfg.Executor.URL, "FINSERV_EXECUTOR_URL")
	setDuration(&cfg.Executor.Timeout, "FINSERV_EXECUTOR_TIMEOUT")
	setInt(&cfg.Executor.MaxConcurrent, "FINSERV_EXECUTOR_MAX_CONCURRENT")
	setString(&cfg.Catalog.Path, "FINSERV_CATALOG_PATH")
	setInt(&cfg.Sidebar.MinWidth, "FINSERV_SIDEBAR_MIN_WIDTH")
	setInt(&cfg.Sidebar.MaxWidth, "FINSERV_SIDEBAR_MAX_WIDTH")
	setInt(&cfg.Sidebar.DefaultWidth, "FINSERV_SIDEBAR_DEFAULT_WIDTH")
	setString(&cfg.Logging.Level, "FINSERV_LOG_LEVEL")
	setString(&cfg.Logging.Service, "FINSERV_LOG_SERVICE")
	setInt(&cfg.Breaker.MaxFailures, "FINSERV_BREAKER_MAX_FAILURES")
	setDuration(&cfg.Breaker.Timeout, "FINSERV_BREAKER_TIMEOUT")
	setInt64(&cfg.Cache.MaxSizeMB, "FINSERV_CACHE_SIZE_MB")
	setDuration(&cfg.Cache.PrefTTL, "FINSERV_CACHE_PREF_TTL")
	setBool(&cfg.Otel.Enabled, "FINSERV_OTEL_ENABLED")
	setString(&cfg.Otel.Endpoint, "FINSERV_OTEL_ENDPOINT")
}

// validate checks that required fields are set.
func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if cfg.Postgres.DSN == "" {
		return errors.New("postgres.dsn is required")
	}
	if cfg.Executor.URL == "" {
		return errors.New("executor.url is required")
	}
	if cfg.Postgres.MaxConns < 1 {
		return errors.New("postgres.max_conns must be >= 1")
	}
	if cfg.Breaker.MaxFailures < 1 {
		return errors.New("breaker.max_failures must be >= 1")
	}
	if cfg.Sidebar.MinWidth > cfg.Sidebar.MaxWidth {
		return errors.New("sidebar.min_width must not exceed sidebar.max_width")
	}
	if cfg.Sidebar.DefaultWidth < cfg.Sidebar.MinWidth || cfg.Sidebar.DefaultWidth > cfg.Sidebar.MaxWidth {
		return errors.New("sidebar.default_width must be within the clamp range")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt32(dst *int32, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			*dst = int32(n)
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
