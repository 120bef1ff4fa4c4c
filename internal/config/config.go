// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// lost-and-found application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds security settings: token signing parameters and the
	// lifetime of password reset tokens.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for all persistence backends, including
	// the relational database and the image file store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Notifier holds configuration for the outbound reset-link delivery
	// channel.
	Notifier Notifier `envPrefix:"NOTIFIER_"`

	// Workers holds configuration for background maintenance processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after environment
	// variables and flags. Populated via the CONFIG environment variable
	// or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds authentication-related configuration values that control token
// lifecycle and password recovery.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify session JWTs.
	// Must be kept confidential. Required.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration controls how long an issued session token (and the
	// matching session row) remains valid.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ResetTokenTTL is the lifetime of a password reset token, measured
	// from issuance.
	// Env: AUTH_RESET_TOKEN_TTL
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system storage settings for uploaded item images.
	Files Files `envPrefix:"FILES_"`
}

// DB holds relational database connection settings.
type DB struct {
	// DSN selects the backend: a postgres:// (or key=value) DSN connects
	// to PostgreSQL, any other non-empty value is treated as an SQLite
	// file path. Required.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds the settings of the on-disk image store.
type Files struct {
	// ImageDir is the directory uploaded item images are written to.
	// When empty, image uploads are rejected and items carry no image
	// reference.
	// Env: STORAGE_FILES_IMAGE_DIR
	ImageDir string `env:"IMAGE_DIR"`
}

// Server holds HTTP server settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the total time spent handling one request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Notifier holds settings of the outbound reset-link delivery webhook.
type Notifier struct {
	// ResetWebhookURL is the endpoint the generated reset link is POSTed
	// to (a mail gateway or similar). When empty, reset links are only
	// logged.
	// Env: NOTIFIER_RESET_WEBHOOK_URL
	ResetWebhookURL string `env:"RESET_WEBHOOK_URL"`

	// Timeout bounds a single delivery attempt.
	// Env: NOTIFIER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Workers holds configuration for background maintenance processes.
type Workers struct {
	// PurgeInterval is how often expired reset tokens and dead sessions
	// are deleted. Zero disables the purge worker.
	// Env: WORKERS_PURGE_INTERVAL
	PurgeInterval time.Duration `env:"PURGE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all supported sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
