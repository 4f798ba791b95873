package config

import (
	"os"
	"time"
)

// Config holds the portal's environment configuration. The remote store
// values are optional: when either is missing the portal runs against the
// in-memory store only.
type Config struct {
	MongoURI  string
	MongoDB   string
	Port      string
	JWTSecret string
	JWTExpiry time.Duration
}

// Load reads configuration from the environment. It never fails; missing
// values fall back to defaults, except the remote store values which stay
// empty and gate availability.
func Load() Config {
	cfg := Config{
		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   os.Getenv("MONGO_DB"),
		Port:      os.Getenv("PORT"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTExpiry: 24 * time.Hour,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}
	if expStr := os.Getenv("JWT_EXPIRY"); expStr != "" {
		if parsed, err := time.ParseDuration(expStr); err == nil {
			cfg.JWTExpiry = parsed
		}
	}
	return cfg
}

// RemoteConfigured reports whether both remote store values are present.
// Absence means the remote store is unavailable, never an error.
func (c Config) RemoteConfigured() bool {
	return c.MongoURI != "" && c.MongoDB != ""
}
