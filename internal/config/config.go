package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"skywatch/milmon/internal/models"
)

// Config is the full runtime configuration. Values come from an
// optional YAML file, then MILMON_* environment overrides, then
// defaults.
type Config struct {
	AppEnv     string         `yaml:"app_env"`
	ListenAddr string         `yaml:"listen_addr"`
	Feed       FeedConfig     `yaml:"feed"`
	Tracking   TrackingConfig `yaml:"tracking"`
	Database   DatabaseConfig `yaml:"database"`
	Redis      RedisConfig    `yaml:"redis"`
	Auth       AuthConfig     `yaml:"auth"`
}

type FeedConfig struct {
	BaseURL             string `yaml:"base_url"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds"`
}

type TrackingConfig struct {
	StalenessWindowSeconds int      `yaml:"staleness_window_seconds"`
	OffensiveCategories    []string `yaml:"offensive_categories"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // "sqlite" or "postgres"
	DSN    string `yaml:"dsn"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
	Stream   string `yaml:"stream"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides and defaults, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.AppEnv, "MILMON_APP_ENV")
	setString(&c.ListenAddr, "MILMON_LISTEN_ADDR")
	setString(&c.Feed.BaseURL, "MILMON_FEED_URL")
	setInt(&c.Feed.PollIntervalSeconds, "MILMON_POLL_INTERVAL_SECONDS")
	setInt(&c.Feed.FetchTimeoutSeconds, "MILMON_FETCH_TIMEOUT_SECONDS")
	setInt(&c.Tracking.StalenessWindowSeconds, "MILMON_STALENESS_WINDOW_SECONDS")
	setString(&c.Database.Driver, "MILMON_DB_DRIVER")
	setString(&c.Database.DSN, "MILMON_DB_DSN")
	setString(&c.Redis.Host, "REDIS_HOST")
	setString(&c.Redis.Port, "REDIS_PORT")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Auth.JWTSecret, "MILMON_JWT_SECRET")

	if v := os.Getenv("MILMON_REDIS_ENABLED"); v != "" {
		c.Redis.Enabled = v == "true" || v == "1"
	}
}

func (c *Config) applyDefaults() {
	if c.AppEnv == "" {
		c.AppEnv = "development"
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.Feed.BaseURL == "" {
		c.Feed.BaseURL = "https://api.adsb.lol"
	}
	if c.Feed.PollIntervalSeconds == 0 {
		c.Feed.PollIntervalSeconds = 10
	}
	if c.Feed.FetchTimeoutSeconds == 0 {
		c.Feed.FetchTimeoutSeconds = 20
	}
	if c.Tracking.StalenessWindowSeconds == 0 {
		c.Tracking.StalenessWindowSeconds = 60
	}
	if len(c.Tracking.OffensiveCategories) == 0 {
		c.Tracking.OffensiveCategories = []string{
			string(models.CategoryFighter),
			string(models.CategoryBomber),
		}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.DSN == "" && c.Database.Driver == "sqlite" {
		c.Database.DSN = "milmon.db"
	}
	if c.Redis.Host == "" {
		c.Redis.Host = "localhost"
	}
	if c.Redis.Port == "" {
		c.Redis.Port = "6379"
	}
	if c.Redis.Stream == "" {
		c.Redis.Stream = "milmon:alerts"
	}
}

func (c *Config) validate() error {
	if c.Feed.PollIntervalSeconds < 1 {
		return fmt.Errorf("feed.poll_interval_seconds must be positive, got %d", c.Feed.PollIntervalSeconds)
	}
	if c.Feed.FetchTimeoutSeconds < 1 {
		return fmt.Errorf("feed.fetch_timeout_seconds must be positive, got %d", c.Feed.FetchTimeoutSeconds)
	}
	if c.Tracking.StalenessWindowSeconds < 1 {
		return fmt.Errorf("tracking.staleness_window_seconds must be positive, got %d", c.Tracking.StalenessWindowSeconds)
	}
	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("database.driver must be sqlite or postgres, got %q", c.Database.Driver)
	}
	if c.Database.Driver == "postgres" && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for the postgres driver")
	}
	for _, raw := range c.Tracking.OffensiveCategories {
		if !models.Category(raw).IsValid() {
			return fmt.Errorf("tracking.offensive_categories: unknown category %q", raw)
		}
	}
	return nil
}

// PollInterval returns the refresh cadence as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Feed.PollIntervalSeconds) * time.Second
}

// FetchTimeout returns the per-fetch deadline as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Feed.FetchTimeoutSeconds) * time.Second
}

// StalenessWindow returns the staleness window as a duration.
func (c *Config) StalenessWindow() time.Duration {
	return time.Duration(c.Tracking.StalenessWindowSeconds) * time.Second
}

// OffensiveSet returns the configured offensive categories as a set.
func (c *Config) OffensiveSet() map[models.Category]bool {
	set := make(map[models.Category]bool, len(c.Tracking.OffensiveCategories))
	for _, raw := range c.Tracking.OffensiveCategories {
		set[models.Category(raw)] = true
	}
	return set
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
