// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-secure-api/internal/secrets"
)

// Default values applied before any source is merged.
const (
	DefaultEnv            = "development"
	DefaultHTTPAddress    = ":3000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxBodySize    = 100 << 10
	DefaultDBDriver       = DriverMemory
	DefaultTokenIssuer    = "go-secure-api"
	DefaultChargeTokenTTL = 5 * time.Minute
)

// Supported values of [DB.Driver].
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// StructuredConfig is the top-level configuration container for the API
// server. It aggregates all sub-configurations and is populated by merging
// defaults, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//   - validate : go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// Secrets holds the confidential values. They have no prefix so the
	// variables are plain DB_PASSWORD, API_KEY and JWT_SECRET.
	Secrets Secrets

	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the user backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener, timeout and request limit settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Secrets holds values that must never be logged or echoed.
type Secrets struct {
	// DBPassword is the password of the SQL user backend.
	// Env: DB_PASSWORD
	DBPassword secrets.Secret `env:"DB_PASSWORD" validate:"required"`

	// APIKey is the credential presented to the payment provider.
	// Env: API_KEY
	APIKey secrets.Secret `env:"API_KEY" validate:"required"`

	// SigningKey signs charge tokens.
	// Env: JWT_SECRET
	SigningKey secrets.Secret `env:"JWT_SECRET" validate:"required"`
}

// App holds application-level configuration values.
type App struct {
	// Env is a free-form environment label ("development", "production").
	// Env: APP_ENV
	Env string `env:"ENV" validate:"required"`

	// TokenIssuer is the "iss" claim of every charge token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" validate:"required"`

	// ChargeTokenTTL is how long a charge token stays valid.
	// Env: APP_CHARGE_TOKEN_TTL
	ChargeTokenTTL time.Duration `env:"CHARGE_TOKEN_TTL" validate:"gt=0"`
}

// Server holds network, timeout and limit settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on ("host:port",
	// host may be empty).
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required"`

	// RequestTimeout bounds a single request and the server read/write
	// timeouts.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`

	// MaxBodySize is the request body ceiling in bytes.
	// Env: SERVER_MAX_BODY_SIZE
	MaxBodySize int64 `env:"MAX_BODY_SIZE" validate:"gt=0"`

	// RateLimitRPS is the per-client request rate. Zero disables limiting.
	// Env: SERVER_RATE_LIMIT_RPS
	RateLimitRPS float64 `env:"RATE_LIMIT_RPS" validate:"gte=0"`

	// RateLimitBurst is the per-client burst size.
	// Env: SERVER_RATE_LIMIT_BURST
	RateLimitBurst int `env:"RATE_LIMIT_BURST" validate:"gte=0"`
}

// Storage groups the configuration of the user backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the user backend.
type DB struct {
	// Driver selects the backend: "memory", "postgres" or "sqlite".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER" validate:"oneof=memory postgres sqlite"`

	// DSN is the connection string of a SQL backend. The password is not
	// part of it; it is taken from [Secrets.DBPassword].
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" validate:"required_unless=Driver memory"`
}

// defaults returns the configuration every other source is merged onto.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:            DefaultEnv,
			TokenIssuer:    DefaultTokenIssuer,
			ChargeTokenTTL: DefaultChargeTokenTTL,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxBodySize:    DefaultMaxBodySize,
		},
		Storage: Storage{
			DB: DB{Driver: DefaultDBDriver},
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Defaults
//  1. Environment variables
//  2. Command-line flags (args, without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
