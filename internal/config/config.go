// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied after every other source has been merged.
const (
	DefaultAPIAddress     = "https://apweb-zhfm.onrender.com"
	DefaultRequestTimeout = 10 * time.Second
	DefaultDBDSN          = "rate-keeper.db"
	DefaultNoticeTTL      = 2500 * time.Millisecond
)

// StructuredConfig is the raw configuration container populated by each
// source before merging.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env lookups (caarlos0/env).
//   - env       — environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds presentation and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local token database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote API connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client-wide presentation settings.
type App struct {
	// LogFile is the path of the JSON log file. Empty selects a file next
	// to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// NoticeTTL is how long a transient notice stays on screen.
	// Env: APP_NOTICE_TTL
	NoticeTTL time.Duration `env:"NOTICE_TTL"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the sqlite token database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings of the local token database.
type DB struct {
	// DSN is the sqlite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the rating API
	// (e.g. "https://api.example.com"). A missing scheme defaults to https.
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout bounds every single API call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// defaultConfig returns the built-in fallback values.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			NoticeTTL: DefaultNoticeTTL,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDBDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAPIAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
