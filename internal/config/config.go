// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package config

import (
	"time"

	"github.com/tomtom215/wishrank/internal/recommend"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Example:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	engine, err := recommend.NewEngine(&cfg.Recommend, logger)
//
// Config is immutable after loading and safe for concurrent reads.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Store     StoreConfig      `koanf:"store"`
	Security  SecurityConfig   `koanf:"security"`
	Logging   LoggingConfig    `koanf:"logging"`
	Recommend recommend.Config `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int    `koanf:"port" validate:"min=1,max=65535"`
	Host string `koanf:"host"`

	// Timeout bounds reading a request and writing its response.
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`

	// Environment mode: "development", "staging", "production".
	Environment string `koanf:"environment" validate:"oneof=development dev staging production prod"`
}

// StoreConfig holds BadgerDB settings.
type StoreConfig struct {
	// Path is the data directory. Required unless InMemory is set.
	Path string `koanf:"path"`

	// InMemory keeps all data in memory; nothing survives a restart.
	InMemory bool `koanf:"in_memory"`

	SyncWrites bool `koanf:"sync_writes"`

	// ValueLogFileSize bounds each value log file in bytes. 0 keeps
	// Badger's default.
	ValueLogFileSize int64 `koanf:"value_log_file_size" validate:"gte=0"`

	// GCInterval is how often value log GC runs.
	// Default: 10m
	GCInterval time.Duration `koanf:"gc_interval" validate:"gt=0"`

	// GCRatio is the discard ratio for value log GC.
	// Default: 0.5
	GCRatio float64 `koanf:"gc_ratio" validate:"gt=0,lt=1"`

	// SeedReference loads the reference catalog when the store is empty.
	// Default: true
	SeedReference bool `koanf:"seed_reference"`
}

// SecurityConfig holds HTTP hardening settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`

	// MaxBodyBytes caps request bodies, including CSV imports.
	// Default: 10MB
	MaxBodyBytes int64 `koanf:"max_body_bytes" validate:"gt=0"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}
