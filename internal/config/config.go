// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// fit-tracker client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the federated login
	// client identifier and the application version.
	App App `envPrefix:"APP_"`

	// Adapter holds base URLs and timeouts for the external REST backends
	// (auth service and calorie service).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local cache database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs (silent token refresh).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// GoogleClientID is the OAuth client identifier used by the federated
	// (Google) login affordance. When empty the affordance is disabled;
	// nothing else in the client depends on it.
	// Env: APP_GOOGLE_CLIENT_ID
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// AuthAddress is the base URL of the auth backend
	// (e.g. "http://localhost:5161").
	// Env: ADAPTER_AUTH_ADDRESS
	AuthAddress string `env:"AUTH_ADDRESS"`

	// CalorieAddress is the base URL of the calorie/nutrition backend
	// (e.g. "http://localhost:5210").
	// Env: ADAPTER_CALORIE_ADDRESS
	CalorieAddress string `env:"CALORIE_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before it is cancelled and surfaced as a network error
	// (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local cache.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite file path of the local cache database
	// (e.g. "fit-tracker.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval defines how often the silent token refresh job runs
	// while the main loop is active (e.g. "10m").
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
