// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

// Package config provides typed, layered application configuration.
//
// Configuration is loaded with Koanf v2 from three layers, later layers
// overriding earlier ones:
//  1. Built-in defaults
//  2. Optional YAML config file (CONFIG_PATH or config.yaml)
//  3. Environment variables
//
// Missing external credentials (OpenRouter, WeatherAPI) never fail startup;
// the services that need them degrade to their fallback paths instead.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Mongo    MongoConfig    `koanf:"mongo"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	ML       MLConfig       `koanf:"ml"`
	Weather  WeatherConfig  `koanf:"weather"`
	Chat     ChatConfig     `koanf:"chat"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development or production
}

// Addr returns the listen address in host:port form.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI                    string        `koanf:"uri"`
	Database               string        `koanf:"database"`
	ConnectTimeout         time.Duration `koanf:"connect_timeout"`
	ServerSelectionTimeout time.Duration `koanf:"server_selection_timeout"`
	MinPoolSize            uint64        `koanf:"min_pool_size"`
	MaxPoolSize            uint64        `koanf:"max_pool_size"`
}

// APIConfig holds API behavior settings.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig holds authentication and rate limiting settings.
type SecurityConfig struct {
	JWTSecret         string        `koanf:"jwt_secret"`
	SessionTimeout    time.Duration `koanf:"session_timeout"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// MLConfig holds model artifact locations for the inference service.
type MLConfig struct {
	// ModelDir is the directory holding exported model artifacts.
	ModelDir string `koanf:"model_dir"`
	// YieldModelFile is the yield regression artifact, relative to ModelDir.
	YieldModelFile string `koanf:"yield_model_file"`
	// CropModelFile is the crop recommendation classifier artifact,
	// relative to ModelDir.
	CropModelFile string `koanf:"crop_model_file"`
}

// WeatherConfig holds WeatherAPI.com client settings.
// An empty APIKey switches the weather service to mock data.
type WeatherConfig struct {
	APIKey  string        `koanf:"api_key"`
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
}

// ChatConfig holds OpenRouter LLM settings for the advisory chatbot.
// An empty or malformed APIKey switches the chatbot to template responses.
type ChatConfig struct {
	OpenRouterAPIKey string        `koanf:"openrouter_api_key"`
	Model            string        `koanf:"model"`
	BaseURL          string        `koanf:"base_url"`
	Timeout          time.Duration `koanf:"timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values that would make the server
// unable to run correctly. Missing external API keys are deliberately not
// validation errors: the dependent services degrade instead.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.Environment != "development" && c.Server.Environment != "production" {
		return fmt.Errorf("server.environment must be development or production, got %q", c.Server.Environment)
	}

	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri is required")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("mongo.database is required")
	}
	if c.Mongo.MaxPoolSize > 0 && c.Mongo.MinPoolSize > c.Mongo.MaxPoolSize {
		return fmt.Errorf("mongo.min_pool_size (%d) exceeds mongo.max_pool_size (%d)",
			c.Mongo.MinPoolSize, c.Mongo.MaxPoolSize)
	}

	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be at least 1, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must be >= api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}

	if c.Security.SessionTimeout <= 0 {
		return fmt.Errorf("security.session_timeout must be positive, got %s", c.Security.SessionTimeout)
	}
	if c.Server.Environment == "production" && len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("security.jwt_secret must be at least 32 characters in production")
	}

	return nil
}
