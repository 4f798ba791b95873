package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRY", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		t.Error("expected a default JWT secret")
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("expected default expiry 24h, got %s", cfg.JWTExpiry)
	}
	if cfg.RemoteConfigured() {
		t.Error("remote store must not be configured with empty values")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "property_portal")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY", "2h")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.JWTExpiry != 2*time.Hour {
		t.Errorf("expected expiry 2h, got %s", cfg.JWTExpiry)
	}
	if !cfg.RemoteConfigured() {
		t.Error("remote store should be configured")
	}
}

func TestRemoteConfiguredNeedsBothValues(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "")

	if Load().RemoteConfigured() {
		t.Error("URI without a database name must not count as configured")
	}

	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB", "property_portal")

	if Load().RemoteConfigured() {
		t.Error("database name without a URI must not count as configured")
	}
}

func TestLoadIgnoresBadExpiry(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	if cfg := Load(); cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("bad expiry should fall back to 24h, got %s", cfg.JWTExpiry)
	}
}
