// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Mongo.Database != "crop_prediction_db" {
		t.Errorf("expected default database crop_prediction_db, got %q", cfg.Mongo.Database)
	}
	if cfg.Chat.Model != "x-ai/grok-4-fast:free" {
		t.Errorf("unexpected default chat model %q", cfg.Chat.Model)
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("MONGO_URI", "mongodb://db.example:27017")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("HTTP_PORT not applied, got %d", cfg.Server.Port)
	}
	if cfg.Mongo.URI != "mongodb://db.example:27017" {
		t.Errorf("MONGO_URI not applied, got %q", cfg.Mongo.URI)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("LOG_LEVEL not applied, got %q", cfg.Logging.Level)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORS_ORIGINS not split, got %v", cfg.Security.CORSOrigins)
	}
}

func TestUnmappedEnvIgnored(t *testing.T) {
	t.Setenv("RANDOM_UNRELATED_VAR", "surprise")

	if got := envTransformFunc("RANDOM_UNRELATED_VAR"); got != "" {
		t.Errorf("unmapped env var should be skipped, got path %q", got)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"bad timeout", func(c *Config) { c.Server.Timeout = 0 }, "server.timeout"},
		{"bad environment", func(c *Config) { c.Server.Environment = "staging" }, "server.environment"},
		{"missing mongo uri", func(c *Config) { c.Mongo.URI = "" }, "mongo.uri"},
		{"missing mongo db", func(c *Config) { c.Mongo.Database = "" }, "mongo.database"},
		{"pool sizes inverted", func(c *Config) { c.Mongo.MinPoolSize = 100; c.Mongo.MaxPoolSize = 10 }, "min_pool_size"},
		{"page size zero", func(c *Config) { c.API.DefaultPageSize = 0 }, "default_page_size"},
		{"max below default", func(c *Config) { c.API.MaxPageSize = 10; c.API.DefaultPageSize = 100 }, "max_page_size"},
		{"session timeout", func(c *Config) { c.Security.SessionTimeout = 0 }, "session_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestProductionRequiresStrongSecret(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.Environment = "production"
	cfg.Security.JWTSecret = "short"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for weak production secret")
	}

	cfg.Security.JWTSecret = strings.Repeat("s", 32)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("32-char secret should pass in production, got: %v", err)
	}
}

func TestServerAddr(t *testing.T) {
	cfg := ServerConfig{Host: "127.0.0.1", Port: 8000, Timeout: time.Second, Environment: "development"}
	if got := cfg.Addr(); got != "127.0.0.1:8000" {
		t.Errorf("Addr() = %q", got)
	}
}
