package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is invalid.
var (
	// ErrInvalidLogConfigs indicates invalid logging settings
	// (for example, an unknown level name).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidSourcesConfigs indicates invalid property source settings
	// (for example, an unsupported property file extension or an empty
	// override key).
	ErrInvalidSourcesConfigs = errors.New("invalid sources configuration")
)
