// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// leads-api application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix:  prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:        direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is not set.
type StructuredConfig struct {
	// App holds application-level settings.
	App App

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"POSTGRES_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// CORS holds the cross-origin policy applied in debug mode.
	CORS CORS `envPrefix:"CORS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Debug enables development mode: verbose logging and the permissive
	// CORS policy. Only the exact string "true" enables it.
	// Env: DEBUG
	Debug Flag `env:"DEBUG" envDefault:"false"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the PostgreSQL connection settings.
	DB DB
}

// DB holds connection settings for the PostgreSQL backend. Values are kept
// as raw strings; nothing is validated until the first connection attempt.
type DB struct {
	// Env: POSTGRES_HOST
	Host string `env:"HOST" envDefault:"localhost"`

	// Env: POSTGRES_PORT
	Port string `env:"PORT" envDefault:"5432"`

	// Env: POSTGRES_USER
	User string `env:"USER" envDefault:"postgres"`

	// Env: POSTGRES_PASSWORD
	Password string `env:"PASSWORD" envDefault:"postgres"`

	// Name is the database name.
	// Env: POSTGRES_LEADS_DB
	Name string `env:"LEADS_DB" envDefault:"leads"`
}

// URL assembles the connection string in the form
// postgresql://<user>:<password>@<host>:<port>/<db>.
func (d DB) URL() string {
	return "postgresql://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.Name
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:":8000"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// CORS describes the development cross-origin policy.
type CORS struct {
	// AllowedOrigin is the frontend dev server origin.
	// Env: CORS_ALLOWED_ORIGIN
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"http://localhost:5173"`
}

// Flag is a boolean setting that is true only when its raw value is exactly
// "true". Any other value, including "True", "1" and "", yields false.
type Flag bool

// UnmarshalText implements [encoding.TextUnmarshaler]. It never fails.
func (f *Flag) UnmarshalText(text []byte) error {
	*f = string(text) == "true"
	return nil
}

// GetStructuredConfig loads and merges the application configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
