// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Server       ServerConfig
	Auth         AuthConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	EnergyCharts EnergyChartsConfig `mapstructure:"energy_charts"`
	Awattar      AwattarConfig      `mapstructure:"awattar"`
	Worker       WorkerConfig
	Cache        CacheConfig
	Series       SeriesConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port          int  `mapstructure:"port"`
	ServeSwagger  bool `mapstructure:"serve_swagger"`
	ServeAsynqmon bool `mapstructure:"serve_asynqmon"`
	ServeMetrics  bool `mapstructure:"serve_metrics"`
}

// AuthConfig holds bearer token verification settings.
type AuthConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
	Audience  string `mapstructure:"audience"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	Name               string `mapstructure:"name"`
	SSLMode            string `mapstructure:"sslmode"`
	MaxOpenConns       int    `mapstructure:"max_open_conns"`
	MaxIdleConns       int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeSec int    `mapstructure:"conn_max_lifetime_sec"`
	DSN                string
}

// RedisConfig holds connection settings for both Redis instances.
type RedisConfig struct {
	AsynqAddr string `mapstructure:"asynq_addr"` // Redis instance for Asynq task queue (required).
	CacheAddr string `mapstructure:"cache_addr"` // Redis instance for provider cache (required).
}

// EnergyChartsConfig holds settings for the Energy-Charts provider.
type EnergyChartsConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout_sec"`
}

// AwattarConfig holds settings for the aWATTar provider, which runs one API per market.
type AwattarConfig struct {
	BaseURLDE string `mapstructure:"base_url_de"`
	BaseURLAT string `mapstructure:"base_url_at"`
	Timeout   int    `mapstructure:"timeout_sec"`
}

// WorkerConfig holds background worker and task queue settings.
type WorkerConfig struct {
	Concurrency      int      `mapstructure:"concurrency"`
	MaxRetry         int      `mapstructure:"max_retry"`
	TimeoutSec       int      `mapstructure:"timeout_sec"`
	CheckIntervalSec int      `mapstructure:"check_interval_sec"`
	WarmCron         string   `mapstructure:"warm_cron"`
	WarmCountries    []string `mapstructure:"warm_countries"`
}

// CacheConfig holds caching settings.
type CacheConfig struct {
	ProviderSeriesTTLSec int `mapstructure:"provider_series_ttl_sec"`
}

// SeriesConfig holds limits applied to series requests.
type SeriesConfig struct {
	MaxRangeDays int `mapstructure:"max_range_days"`
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file found or error loading it: %v\n", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config search paths
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")

	v.SetEnvPrefix("PRICESVC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if no config file, we have defaults and env
		fmt.Printf("Config file not found: %v\n", err)
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.serve_swagger", true)
	v.SetDefault("server.serve_asynqmon", true)
	v.SetDefault("server.serve_metrics", true)
	v.SetDefault("auth.enabled", true)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "")
	v.SetDefault("auth.audience", "")
	v.SetDefault("database.host", "db")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "pricesdb")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_sec", 300)
	v.SetDefault("redis.asynq_addr", "redis_asynq:6380")
	v.SetDefault("redis.cache_addr", "redis_cache:6381")
	v.SetDefault("energy_charts.base_url", "https://api.energy-charts.info")
	v.SetDefault("energy_charts.timeout_sec", 10)
	v.SetDefault("awattar.base_url_de", "https://api.awattar.de/v1")
	v.SetDefault("awattar.base_url_at", "https://api.awattar.at/v1")
	v.SetDefault("awattar.timeout_sec", 5)
	v.SetDefault("worker.concurrency", 2)
	v.SetDefault("worker.max_retry", 3)
	v.SetDefault("worker.timeout_sec", 60)
	v.SetDefault("worker.check_interval_sec", 5)
	v.SetDefault("worker.warm_cron", "15 13 * * *")
	v.SetDefault("worker.warm_countries", []string{"DE", "AT", "FR"})
	v.SetDefault("cache.provider_series_ttl_sec", 3600)
	v.SetDefault("series.max_range_days", 400)
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Database.MaxOpenConns <= 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns <= 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetimeSec <= 0 {
		cfg.Database.ConnMaxLifetimeSec = 300
	}

	cfg.Database.DSN = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Database.User, cfg.Database.Password,
		cfg.Database.Host, cfg.Database.Port,
		cfg.Database.Name, cfg.Database.SSLMode)

	return &cfg, nil
}

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}

	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		errs = append(errs, fmt.Errorf("auth.jwt_secret is required when auth is enabled (set PRICESVC_AUTH_JWT_SECRET)"))
	}

	if c.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if c.Database.Port <= 0 {
		errs = append(errs, fmt.Errorf("database.port must be positive, got %d", c.Database.Port))
	}
	if c.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}
	if c.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}

	if c.Redis.AsynqAddr == "" {
		errs = append(errs, fmt.Errorf("redis.asynq_addr is required (set PRICESVC_REDIS_ASYNQ_ADDR)"))
	}
	if c.Redis.CacheAddr == "" {
		errs = append(errs, fmt.Errorf("redis.cache_addr is required (set PRICESVC_REDIS_CACHE_ADDR)"))
	}

	if c.Worker.Concurrency <= 0 {
		errs = append(errs, fmt.Errorf("worker.concurrency must be positive, got %d", c.Worker.Concurrency))
	}
	if c.Worker.MaxRetry < 0 {
		errs = append(errs, fmt.Errorf("worker.max_retry must be non-negative, got %d", c.Worker.MaxRetry))
	}
	if c.Worker.TimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("worker.timeout_sec must be positive, got %d", c.Worker.TimeoutSec))
	}
	if c.Worker.CheckIntervalSec <= 0 {
		errs = append(errs, fmt.Errorf("worker.check_interval_sec must be positive, got %d", c.Worker.CheckIntervalSec))
	}

	if c.Cache.ProviderSeriesTTLSec <= 0 {
		errs = append(errs, fmt.Errorf("cache.provider_series_ttl_sec must be positive, got %d", c.Cache.ProviderSeriesTTLSec))
	}
	if c.Series.MaxRangeDays <= 0 {
		errs = append(errs, fmt.Errorf("series.max_range_days must be positive, got %d", c.Series.MaxRangeDays))
	}

	return errors.Join(errs...)
}
