// ABOUTME: Tests for environment-driven configuration
// ABOUTME: Verifies defaults, overrides, and validation rules
package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LESSONSEARCH_BACKEND", "LESSONSEARCH_DB", "CHARM_HOST", "CHARM_DB",
		"CHARM_AUTO_SYNC", "OPENAI_API_KEY", "LESSONSEARCH_EMBEDDING_MODEL",
		"OPENAI_TIMEOUT", "OPENAI_MAX_RETRIES", "OPENAI_RETRY_DELAY",
		"SEARCH_THRESHOLD", "SEARCH_LIMIT", "VECTOR_DIMENSION", "LESSONSEARCH_CATALOG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend != BackendSQLite {
		t.Errorf("Backend = %q, want sqlite", cfg.Backend)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %q", cfg.EmbeddingModel)
	}
	if cfg.SearchThreshold != 0.55 {
		t.Errorf("SearchThreshold = %f, want 0.55", cfg.SearchThreshold)
	}
	if cfg.SearchLimit != 20 {
		t.Errorf("SearchLimit = %d, want 20", cfg.SearchLimit)
	}
	if cfg.VectorDimension != 384 {
		t.Errorf("VectorDimension = %d, want 384", cfg.VectorDimension)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if !cfg.AutoSync {
		t.Error("AutoSync should default to true")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LESSONSEARCH_BACKEND", "memory")
	t.Setenv("SEARCH_THRESHOLD", "0.7")
	t.Setenv("SEARCH_LIMIT", "5")
	t.Setenv("OPENAI_TIMEOUT", "10s")
	t.Setenv("CHARM_AUTO_SYNC", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend != BackendMemory {
		t.Errorf("Backend = %q, want memory", cfg.Backend)
	}
	if cfg.SearchThreshold != 0.7 {
		t.Errorf("SearchThreshold = %f, want 0.7", cfg.SearchThreshold)
	}
	if cfg.SearchLimit != 5 {
		t.Errorf("SearchLimit = %d, want 5", cfg.SearchLimit)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
	if cfg.AutoSync {
		t.Error("AutoSync should be false")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEARCH_LIMIT", "not-a-number")
	t.Setenv("OPENAI_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SearchLimit != 20 {
		t.Errorf("SearchLimit = %d, want default 20", cfg.SearchLimit)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want default 30s", cfg.Timeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad backend", func(c *Config) { c.Backend = "redis" }, true},
		{"threshold too high", func(c *Config) { c.SearchThreshold = 1.5 }, true},
		{"threshold negative", func(c *Config) { c.SearchThreshold = -0.1 }, true},
		{"zero limit", func(c *Config) { c.SearchLimit = 0 }, true},
		{"too many retries", func(c *Config) { c.MaxRetries = 11 }, true},
		{"memory backend", func(c *Config) { c.Backend = BackendMemory }, false},
		{"charm backend", func(c *Config) { c.Backend = BackendCharm }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Backend:         BackendSQLite,
				SearchThreshold: 0.55,
				SearchLimit:     20,
				MaxRetries:      3,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_InvalidBackendFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("LESSONSEARCH_BACKEND", "cassandra")

	if _, err := Load(); err == nil {
		t.Error("Expected error for unsupported backend")
	}
}
