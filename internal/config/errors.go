package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, an empty HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, neither a DSN nor a host and database name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidTelemetryConfigs indicates tracing was enabled without a
	// collector to export to.
	ErrInvalidTelemetryConfigs = errors.New("invalid telemetry configuration")
	// ErrUnsupportedConfigFile is returned for configuration files whose
	// extension is neither JSON nor YAML.
	ErrUnsupportedConfigFile = errors.New("unsupported configuration file format")
)
