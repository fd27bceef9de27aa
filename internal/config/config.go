// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the wallet
// process. It is populated by merging default values, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds wallet-level settings: the identifier name version tag and
	// the KERIA passcode material.
	App App `envPrefix:"APP_"`

	// Keria holds the cloud agent endpoints and timeouts.
	Keria Keria `envPrefix:"KERIA_"`

	// Storage holds the local record store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the local control API listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background job intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the log level and the rotating log file settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds wallet-level settings.
type App struct {
	// IdentifierVersion is the version tag written in front of every
	// identifier name stored on KERIA ("{version}:{theme}:{displayName}").
	// Env: APP_IDENTIFIER_VERSION
	IdentifierVersion string `env:"IDENTIFIER_VERSION"`

	// Passcode is the KERIA agent passcode (bran). When set it is sealed
	// with Password and stored locally; later starts can omit it.
	// Env: APP_PASSCODE
	Passcode string `env:"PASSCODE"`

	// Password unlocks the locally sealed passcode.
	// Env: APP_PASSWORD
	Password string `env:"PASSWORD"`
}

// Keria holds the cloud agent endpoints.
type Keria struct {
	// URL is the KERIA admin interface, e.g. "http://127.0.0.1:3901".
	// Env: KERIA_URL
	URL string `env:"URL"`

	// BootURL is the KERIA boot interface used to provision a new agent.
	// Env: KERIA_BOOT_URL
	BootURL string `env:"BOOT_URL"`

	// RequestTimeout bounds every outbound KERIA request.
	// Env: KERIA_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// OobiResolveTimeout bounds the wait for a synchronous OOBI resolution.
	// Env: KERIA_OOBI_RESOLVE_TIMEOUT
	OobiResolveTimeout time.Duration `env:"OOBI_RESOLVE_TIMEOUT"`
}

// Storage groups the configuration of the local record store.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite database.
type DB struct {
	// DSN is the path of the SQLite file, or ":memory:" for the in-memory
	// stores.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings for the local control API.
type Server struct {
	// HTTPAddress is the TCP address the control API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single control API request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// APIToken, when set, must be presented as a bearer token by every
	// control API client.
	// Env: SERVER_API_TOKEN
	APIToken string `env:"API_TOKEN"`
}

// Workers holds background job intervals.
type Workers struct {
	// OperationPollInterval is how often pending KERIA operations are polled.
	// Env: WORKERS_OPERATION_POLL_INTERVAL
	OperationPollInterval time.Duration `env:"OPERATION_POLL_INTERVAL"`

	// SyncInterval is how often identifiers and contacts are reconciled.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ReconnectInterval is the fixed delay between KERIA connect attempts.
	// Env: WORKERS_RECONNECT_INTERVAL
	ReconnectInterval time.Duration `env:"RECONNECT_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the rotating log file path. Empty means stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// MaxSizeMB is the size at which the log file is rotated.
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`

	// MaxBackups is the number of rotated files kept.
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`

	// MaxAgeDays is the number of days rotated files are kept.
	// Env: LOG_MAX_AGE_DAYS
	MaxAgeDays int `env:"MAX_AGE_DAYS"`
}

// defaultConfig is merged first, so every other source overrides it.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			IdentifierVersion: "1.2.0.3",
		},
		Keria: Keria{
			RequestTimeout:     30 * time.Second,
			OobiResolveTimeout: 5 * time.Second,
		},
		Storage: Storage{
			DB: DB{DSN: "wallet.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8787",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			OperationPollInterval: 2 * time.Second,
			SyncInterval:          time.Minute,
			ReconnectInterval:     time.Second,
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override non-zero
// fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// The positional arguments left after flag parsing are returned alongside.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	return cfg, b.args, err
}
