// Package config provides configuration loading, merging, and validation
// facilities for the API server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables (a ".env" file is loaded first when present)
//  2. Command-line flags
//  3. JSON config file
//
// Secrets (database password, API key, signing key) are read from the
// environment only. They are never accepted as flags or from the JSON file,
// and a missing secret fails startup with [ErrMissingSecrets].
//
// The main entry point is [GetStructuredConfig].
package config
