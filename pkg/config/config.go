package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Local API server configuration"`
	Remote   RemoteConfig   `yaml:"remote" json:"remote" jsonschema:"description=Remote service configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Local settings database configuration"`
	Feeds    FeedsConfig    `yaml:"feeds" json:"feeds" jsonschema:"description=Feed checker configuration"`
}

// ServerConfig holds local API server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=127.0.0.1:8090,minLength=1,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// RemoteConfig holds settings of the remote service personas, templates and topics are stored on
type RemoteConfig struct {
	BaseURL     string        `yaml:"base_url" json:"base_url" jsonschema:"minLength=1,description=Remote service API base URL including the version prefix"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=2m,description=Remote request timeout"`
	UserAgent   string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=buddy,description=User agent for remote requests"`
	LoadRetries int           `yaml:"load_retries" json:"load_retries" jsonschema:"default=3,minimum=1,description=Attempts to load personas on start"`
	RetryDelay  time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=1s,description=Initial delay between load attempts"`
}

// DatabaseConfig holds local sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:buddy.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=4,minimum=0,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=2,minimum=0,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,minimum=0,description=Connection maximum lifetime in seconds"`
}

// FeedsConfig holds feed checker settings
type FeedsConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed fetch timeout"`
	MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=4,minimum=1,description=Maximum concurrent feed checks"`
	PreviewItems  int           `yaml:"preview_items" json:"preview_items" jsonschema:"default=5,minimum=1,description=Entries returned per checked feed"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Mozilla/5.0 (compatible; Buddy/1.0),description=User agent for feed requests"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema check is supplementary, validate above is authoritative
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = "127.0.0.1:8090"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Remote.Timeout == 0 {
		c.Remote.Timeout = 2 * time.Minute
	}
	if c.Remote.UserAgent == "" {
		c.Remote.UserAgent = "buddy"
	}
	if c.Remote.LoadRetries == 0 {
		c.Remote.LoadRetries = 3
	}
	if c.Remote.RetryDelay == 0 {
		c.Remote.RetryDelay = time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:buddy.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 4
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 2
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Feeds.Timeout == 0 {
		c.Feeds.Timeout = 30 * time.Second
	}
	if c.Feeds.MaxConcurrent == 0 {
		c.Feeds.MaxConcurrent = 4
	}
	if c.Feeds.PreviewItems == 0 {
		c.Feeds.PreviewItems = 5
	}
	if c.Feeds.UserAgent == "" {
		c.Feeds.UserAgent = "Mozilla/5.0 (compatible; Buddy/1.0)"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Remote.BaseURL == "" {
		return fmt.Errorf("remote.base_url is required")
	}
	u, err := url.Parse(cfg.Remote.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("remote.base_url must be an absolute http(s) url, got %q", cfg.Remote.BaseURL)
	}
	if cfg.Remote.Timeout < time.Second {
		return fmt.Errorf("remote.timeout must be at least 1 second")
	}
	if cfg.Remote.LoadRetries < 1 {
		return fmt.Errorf("remote.load_retries must be at least 1")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Feeds.MaxConcurrent < 1 {
		return fmt.Errorf("feeds.max_concurrent must be at least 1")
	}
	if cfg.Feeds.PreviewItems < 1 {
		return fmt.Errorf("feeds.preview_items must be at least 1")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetRemoteConfig returns remote service configuration
func (c *Config) GetRemoteConfig() RemoteConfig {
	return c.Remote
}

// GetFeedsConfig returns feed checker configuration
func (c *Config) GetFeedsConfig() FeedsConfig {
	return c.Feeds
}
