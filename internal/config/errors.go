package config

import "errors"

// Errors returned by [StructuredConfig.validate] when the merged
// configuration is incomplete or invalid.
var (
	// ErrMissingSecrets indicates that at least one required secret
	// (DB_PASSWORD, API_KEY, JWT_SECRET) is absent or empty.
	ErrMissingSecrets = errors.New("missing required secrets")
	// ErrInvalidServerConfigs indicates invalid listener or limit settings
	// (for example, a non-positive body size ceiling).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an unknown storage driver or a SQL
	// driver selected without a DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
