package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("SESSION_STORE", "")
	t.Setenv("API_TIMEOUT_SECONDS", "")
	t.Setenv("SESSION_IDLE_MINUTES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:5000/api" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Session.Store != SessionStoreMemory {
		t.Errorf("Session.Store = %q, want %q", cfg.Session.Store, SessionStoreMemory)
	}
	if cfg.API.Timeout() != 15*time.Second {
		t.Errorf("API timeout = %v", cfg.API.Timeout())
	}
	if cfg.Session.IdleTimeout() != time.Hour {
		t.Errorf("Session idle timeout = %v", cfg.Session.IdleTimeout())
	}
	if cfg.Session.TTL() != 0 {
		t.Errorf("Session TTL = %v, want 0", cfg.Session.TTL())
	}
}

func TestLoad_BaseURLOverride(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.ndis.example/api/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://api.ndis.example/api" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", cfg.API.BaseURL)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown session store", "SESSION_STORE", "cookie"},
		{"base url without scheme", "API_BASE_URL", "localhost:5000/api"},
		{"redis db not a number", "REDIS_DB", "zero"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.val)
			}
		})
	}
}

func TestGetEnvAsInt_FallsBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	if got := getEnvAsInt("SOME_INT", 7); got != 7 {
		t.Errorf("getEnvAsInt = %d, want 7", got)
	}
}
