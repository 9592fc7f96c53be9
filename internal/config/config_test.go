package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.BatchSize != 50 {
		t.Errorf("expected batch size 50, got %d", cfg.BatchSize)
	}
	if !cfg.Timestamps {
		t.Error("timestamps should default to on")
	}
	if !cfg.Progress {
		t.Error("progress should default to on")
	}
	if cfg.Workers != 0 {
		t.Errorf("workers should default to derived (0), got %d", cfg.Workers)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %s", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
workers: 8
net_workers: 4
timestamps: false
timeout: 45s
retry:
  attempts: 5
  backoff: 1s
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.Workers != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.Workers)
	}
	if cfg.NetWorkers != 4 {
		t.Errorf("expected 4 net workers, got %d", cfg.NetWorkers)
	}
	if cfg.Timestamps {
		t.Error("timestamps should be off")
	}
	if !cfg.Progress {
		t.Error("progress should keep its default when the key is absent")
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("expected 45s timeout, got %s", cfg.Timeout)
	}
	if cfg.Retry.Attempts != 5 {
		t.Errorf("expected 5 retry attempts, got %d", cfg.Retry.Attempts)
	}
	if cfg.Retry.Backoff != time.Second {
		t.Errorf("expected 1s backoff, got %s", cfg.Retry.Backoff)
	}
	if cfg.Retry.MaxBackoff != 10*time.Second {
		t.Errorf("max backoff should keep its default, got %s", cfg.Retry.MaxBackoff)
	}
	if cfg.BatchSize != 50 {
		t.Errorf("batch size should keep its default, got %d", cfg.BatchSize)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("workers: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SEEDBED_WORKERS", "12")
	t.Setenv("SEEDBED_TIMESTAMPS", "false")
	t.Setenv("SEEDBED_TIMEOUT", "2m")

	cfg := Default()
	if err := cfg.LoadFromEnv(); err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}

	if cfg.Workers != 12 {
		t.Errorf("expected 12 workers, got %d", cfg.Workers)
	}
	if cfg.Timestamps {
		t.Error("timestamps should be off")
	}
	if cfg.Timeout != 2*time.Minute {
		t.Errorf("expected 2m timeout, got %s", cfg.Timeout)
	}
}

func TestLoadFromEnvInvalid(t *testing.T) {
	t.Setenv("SEEDBED_WORKERS", "many")

	cfg := Default()
	if err := cfg.LoadFromEnv(); err == nil {
		t.Error("expected error for non-numeric SEEDBED_WORKERS")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"explicit workers", func(c *Config) { c.Workers = 16 }, false},
		{"negative workers", func(c *Config) { c.Workers = -1 }, true},
		{"negative net workers", func(c *Config) { c.NetWorkers = -2 }, true},
		{"zero batch size", func(c *Config) { c.BatchSize = 0 }, true},
		{"negative image users", func(c *Config) { c.ImageUsers = -5 }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
		{"zero max conns", func(c *Config) { c.MaxConns = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := Default()
	merged := base.Merge(Config{Workers: 6, Timeout: time.Minute})

	if merged.Workers != 6 {
		t.Errorf("expected 6 workers, got %d", merged.Workers)
	}
	if merged.Timeout != time.Minute {
		t.Errorf("expected 1m timeout, got %s", merged.Timeout)
	}
	if merged.BatchSize != base.BatchSize {
		t.Errorf("batch size should be untouched, got %d", merged.BatchSize)
	}
	if merged.Retry != base.Retry {
		t.Errorf("retry should be untouched, got %+v", merged.Retry)
	}
}
