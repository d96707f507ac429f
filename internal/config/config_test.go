package config

import (
	"flag"
	"os"
	"strings"
	"testing"
	"time"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("ENABLE_HTTPS", "")
	t.Setenv("PHOTO_MAX_MB", "")
	t.Setenv("CLIENT_DB_PATH", "")
	t.Setenv("USE_REMOTE", "")
	t.Setenv("HTTP_TIMEOUT", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.PhotoMaxSizeMB != 10 {
		t.Fatalf("PhotoMaxSizeMB default expected 10, got %d", cfg.PhotoMaxSizeMB)
	}
	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8081" {
		t.Fatalf("ServerURL default expected 'http://localhost:8081', got %q", cfg.ServerURL)
	}
	if cfg.ClientDBPath == "" || cfg.DatabaseDSN == "" {
		t.Fatalf("file defaults must be non-empty: ClientDBPath=%q, DatabaseDSN=%q", cfg.ClientDBPath, cfg.DatabaseDSN)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("HTTPTimeout default expected 10s, got %v", cfg.HTTPTimeout)
	}
	if cfg.RemoteConfigured() {
		t.Fatalf("remote must be off by default")
	}
	if cfg.OverpassURL == "" || cfg.SMHIURL == "" || cfg.OpenWeatherMapURL == "" {
		t.Fatalf("external service URLs must have defaults: %+v", cfg)
	}
}

func TestNewConfig_BaseURLAndHTTPS(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("PHOTO_MAX_MB", "3")
	t.Setenv("USE_REMOTE", "true")
	t.Setenv("HTTP_TIMEOUT", "2s")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "example.com:443" {
		t.Fatalf("BaseURL expected 'example.com:443', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected from env 'top', got %q", cfg.AuthSecret)
	}
	if cfg.PhotoMaxSizeMB != 3 {
		t.Fatalf("PhotoMaxSizeMB expected 3, got %d", cfg.PhotoMaxSizeMB)
	}
	if !cfg.RemoteConfigured() {
		t.Fatalf("USE_REMOTE=true must enable remote backend")
	}
	if cfg.HTTPTimeout != 2*time.Second {
		t.Fatalf("HTTPTimeout expected 2s, got %v", cfg.HTTPTimeout)
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("ENABLE_HTTPS", "false")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8081', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:8081") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
}

func TestRemoteConfigured_NilSafe(t *testing.T) {
	var cfg *Config
	if cfg.RemoteConfigured() {
		t.Fatalf("nil config must not report remote")
	}
}
