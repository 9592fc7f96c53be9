package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines configuration for the seedbed CLI.
type Config struct {
	Workers    int           `yaml:"workers"`     // filesystem pool size, 0 = derive
	NetWorkers int           `yaml:"net_workers"` // network pool size, 0 = derive
	BatchSize  int           `yaml:"batch_size"`  // flat-count slice size
	Timestamps bool          `yaml:"timestamps"`  // stamp randomized mtimes
	Progress   bool          `yaml:"progress"`    // show progress bars
	ImageUsers int           `yaml:"image_users"` // users that get image downloads
	ImageCount int           `yaml:"image_count"` // distinct image-service URLs
	Timeout    time.Duration `yaml:"timeout"`     // per-fetch timeout
	MaxConns   int           `yaml:"max_conns"`   // simultaneous outbound connections
	Retry      RetryConfig   `yaml:"retry"`
}

// RetryConfig defines transport-level retry behavior.
type RetryConfig struct {
	Attempts   int           `yaml:"attempts"`
	Backoff    time.Duration `yaml:"backoff"`
	MaxBackoff time.Duration `yaml:"max_backoff"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		BatchSize:  50,
		Timestamps: true,
		Progress:   true,
		ImageUsers: 10,
		ImageCount: 50,
		Timeout:    30 * time.Second,
		MaxConns:   10,
		Retry: RetryConfig{
			Attempts:   3,
			Backoff:    500 * time.Millisecond,
			MaxBackoff: 10 * time.Second,
		},
	}
}

// yamlConfig mirrors Config for unmarshaling; booleans are pointers so an
// absent key keeps its default, and durations are strings.
type yamlConfig struct {
	Workers    int             `yaml:"workers"`
	NetWorkers int             `yaml:"net_workers"`
	BatchSize  int             `yaml:"batch_size"`
	Timestamps *bool           `yaml:"timestamps"`
	Progress   *bool           `yaml:"progress"`
	ImageUsers int             `yaml:"image_users"`
	ImageCount int             `yaml:"image_count"`
	Timeout    string          `yaml:"timeout"`
	MaxConns   int             `yaml:"max_conns"`
	Retry      yamlRetryConfig `yaml:"retry"`
}

type yamlRetryConfig struct {
	Attempts   int    `yaml:"attempts"`
	Backoff    string `yaml:"backoff"`
	MaxBackoff string `yaml:"max_backoff"`
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Default()

	if yc.Workers != 0 {
		cfg.Workers = yc.Workers
	}
	if yc.NetWorkers != 0 {
		cfg.NetWorkers = yc.NetWorkers
	}
	if yc.BatchSize != 0 {
		cfg.BatchSize = yc.BatchSize
	}
	if yc.Timestamps != nil {
		cfg.Timestamps = *yc.Timestamps
	}
	if yc.Progress != nil {
		cfg.Progress = *yc.Progress
	}
	if yc.ImageUsers != 0 {
		cfg.ImageUsers = yc.ImageUsers
	}
	if yc.ImageCount != 0 {
		cfg.ImageCount = yc.ImageCount
	}
	if yc.Timeout != "" {
		d, err := time.ParseDuration(yc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if yc.MaxConns != 0 {
		cfg.MaxConns = yc.MaxConns
	}
	if yc.Retry.Attempts != 0 {
		cfg.Retry.Attempts = yc.Retry.Attempts
	}
	if yc.Retry.Backoff != "" {
		d, err := time.ParseDuration(yc.Retry.Backoff)
		if err != nil {
			return Config{}, fmt.Errorf("parse retry.backoff: %w", err)
		}
		cfg.Retry.Backoff = d
	}
	if yc.Retry.MaxBackoff != "" {
		d, err := time.ParseDuration(yc.Retry.MaxBackoff)
		if err != nil {
			return Config{}, fmt.Errorf("parse retry.max_backoff: %w", err)
		}
		cfg.Retry.MaxBackoff = d
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the SEEDBED_ prefix.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("SEEDBED_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse SEEDBED_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := os.Getenv("SEEDBED_NET_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse SEEDBED_NET_WORKERS: %w", err)
		}
		c.NetWorkers = n
	}
	if v := os.Getenv("SEEDBED_BATCH_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse SEEDBED_BATCH_SIZE: %w", err)
		}
		c.BatchSize = n
	}
	if v := os.Getenv("SEEDBED_TIMESTAMPS"); v != "" {
		c.Timestamps = v == "true" || v == "1"
	}
	if v := os.Getenv("SEEDBED_PROGRESS"); v != "" {
		c.Progress = v == "true" || v == "1"
	}
	if v := os.Getenv("SEEDBED_IMAGE_USERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse SEEDBED_IMAGE_USERS: %w", err)
		}
		c.ImageUsers = n
	}
	if v := os.Getenv("SEEDBED_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse SEEDBED_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := os.Getenv("SEEDBED_MAX_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse SEEDBED_MAX_CONNS: %w", err)
		}
		c.MaxConns = n
	}
	if v := os.Getenv("SEEDBED_RETRY_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse SEEDBED_RETRY_ATTEMPTS: %w", err)
		}
		c.Retry.Attempts = n
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return errors.New("config: workers must not be negative")
	}
	if c.NetWorkers < 0 {
		return errors.New("config: net_workers must not be negative")
	}
	if c.BatchSize <= 0 {
		return errors.New("config: batch_size must be positive")
	}
	if c.ImageUsers < 0 {
		return errors.New("config: image_users must not be negative")
	}
	if c.Timeout <= 0 {
		return errors.New("config: timeout must be positive")
	}
	if c.MaxConns <= 0 {
		return errors.New("config: max_conns must be positive")
	}
	return nil
}

// Merge merges override values into c, returning a new Config.
// Zero values in override are ignored.
func (c Config) Merge(override Config) Config {
	if override.Workers != 0 {
		c.Workers = override.Workers
	}
	if override.NetWorkers != 0 {
		c.NetWorkers = override.NetWorkers
	}
	if override.BatchSize != 0 {
		c.BatchSize = override.BatchSize
	}
	if override.ImageUsers != 0 {
		c.ImageUsers = override.ImageUsers
	}
	if override.ImageCount != 0 {
		c.ImageCount = override.ImageCount
	}
	if override.Timeout != 0 {
		c.Timeout = override.Timeout
	}
	if override.MaxConns != 0 {
		c.MaxConns = override.MaxConns
	}
	if override.Retry.Attempts != 0 {
		c.Retry.Attempts = override.Retry.Attempts
	}
	if override.Retry.Backoff != 0 {
		c.Retry.Backoff = override.Retry.Backoff
	}
	if override.Retry.MaxBackoff != 0 {
		c.Retry.MaxBackoff = override.Retry.MaxBackoff
	}
	return c
}
