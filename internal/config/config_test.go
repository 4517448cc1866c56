package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with a clean environment should succeed: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("default read timeout = %s", cfg.Server.ReadTimeout)
	}
	if cfg.Batch.Concurrency != 4 {
		t.Errorf("default batch concurrency = %d, want 4", cfg.Batch.Concurrency)
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("default log level = %q, want INFO", cfg.Logging.Level)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("READ_TIMEOUT", "5s")
	t.Setenv("BATCH_CONCURRENCY", "16")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("read timeout = %s, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Batch.Concurrency != 16 {
		t.Errorf("batch concurrency = %d, want 16", cfg.Batch.Concurrency)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("non-numeric port", func(t *testing.T) {
		t.Setenv("PORT", "http")
		if _, err := Load(); err == nil {
			t.Error("a non-numeric port should fail validation")
		}
	})

	t.Run("zero concurrency", func(t *testing.T) {
		t.Setenv("BATCH_CONCURRENCY", "0")
		if _, err := Load(); err == nil {
			t.Error("zero batch concurrency should fail validation")
		}
	})

	t.Run("unparseable int falls back", func(t *testing.T) {
		t.Setenv("BATCH_CONCURRENCY", "many")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Batch.Concurrency != 4 {
			t.Errorf("unparseable concurrency should use the default, got %d", cfg.Batch.Concurrency)
		}
	})
}
