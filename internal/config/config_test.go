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
	old := flag.CommandLine
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
	t.Cleanup(func() { flag.CommandLine = old })
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URI", "AUTH_SECRET", "TOKEN_TTL", "CORS_ORIGINS", "AUTH_RATE_LIMIT",
		"BASE_URL", "ENABLE_HTTPS", "LOG_LEVEL", "TOKEN_FILE", "ASSUME_YES",
	} {
		t.Setenv(k, "")
	}
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	clearEnv(t)
	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.DatabaseDSN != DefaultDatabaseDSN {
		t.Fatalf("DatabaseDSN default expected %q, got %q", DefaultDatabaseDSN, cfg.DatabaseDSN)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("TokenTTL default expected 24h, got %s", cfg.TokenTTL)
	}
	if cfg.AuthRateLimit != DefaultAuthRateLimit {
		t.Fatalf("AuthRateLimit default expected %d, got %d", DefaultAuthRateLimit, cfg.AuthRateLimit)
	}
	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8081" {
		t.Fatalf("ServerURL default expected 'http://localhost:8081', got %q", cfg.ServerURL)
	}
	if cfg.AssumeYes {
		t.Fatalf("AssumeYes must default to false")
	}
	if got := cfg.AllowedOrigins(); len(got) != 1 || got[0] != "*" {
		t.Fatalf("AllowedOrigins default expected [*], got %v", got)
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("ASSUME_YES", "true")
	t.Setenv("TOKEN_FILE", "/tmp/tok")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected from env 'top', got %q", cfg.AuthSecret)
	}
	if cfg.TokenTTL != 90*time.Minute {
		t.Fatalf("TokenTTL expected 90m, got %s", cfg.TokenTTL)
	}
	if got := cfg.AllowedOrigins(); strings.Join(got, "|") != "http://a.test|http://b.test" {
		t.Fatalf("AllowedOrigins parsed wrong: %v", got)
	}
	if !cfg.AssumeYes || cfg.TokenFile != "/tmp/tok" {
		t.Fatalf("client settings not read from env: %+v", cfg)
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	clearEnv(t)
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	t.Setenv("BASE_URL", "http://bad:8080")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8081', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:8081") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
}

func TestNewConfig_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "env.host:1000")

	resetFlagSet(t)
	oldArgs := os.Args
	os.Args = []string{"idealyard", "-base-url", "flag.host:2000", "-y", "whoami"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := NewConfig()
	if cfg.BaseURL != "flag.host:2000" {
		t.Fatalf("flag must win over env, got %q", cfg.BaseURL)
	}
	if !cfg.AssumeYes {
		t.Fatalf("-y flag not applied")
	}
	if args := flag.Args(); len(args) != 1 || args[0] != "whoami" {
		t.Fatalf("positional args lost: %v", args)
	}
}
