package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected addr: %s", cfg.Addr)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("unexpected token ttl: %v", cfg.TokenTTL)
	}
	if cfg.CookieName != "aureon_token" {
		t.Fatalf("unexpected cookie name: %s", cfg.CookieName)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Fatalf("unexpected body limit: %d", cfg.MaxBodyBytes)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUREON_ADDR", ":9999")
	t.Setenv("AUREON_TOKEN_TTL", "1h")
	t.Setenv("AUREON_RATE_BURST", "5")
	t.Setenv("AUREON_AUTH_SECRET", "  s3cret  ")

	cfg := Load()
	if cfg.Addr != ":9999" {
		t.Fatalf("addr override ignored: %s", cfg.Addr)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("ttl override ignored: %v", cfg.TokenTTL)
	}
	if cfg.RateLimitBurst != 5 {
		t.Fatalf("burst override ignored: %d", cfg.RateLimitBurst)
	}
	if cfg.AuthSecret != "s3cret" {
		t.Fatalf("secret not trimmed: %q", cfg.AuthSecret)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("AUREON_TOKEN_TTL", "not-a-duration")
	t.Setenv("AUREON_RATE_PER_SEC", "ten")

	cfg := Load()
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected fallback ttl, got %v", cfg.TokenTTL)
	}
	if cfg.RateLimitPerSec != 10 {
		t.Fatalf("expected fallback rate, got %d", cfg.RateLimitPerSec)
	}
}
