// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EnvPrefix is prepended to every bootstrap environment variable.
const EnvPrefix = "ANALYSIS_"

// StructuredConfig is the top-level bootstrap configuration container for
// the analysis-app binary. It is populated by merging values from an
// optional JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//   - validate  — go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// Sources describes where application properties are read from.
	Sources Sources

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// loaded from environment variables and flags.
	// Populated via the ANALYSIS_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum level written ("trace", "debug", "info", "warn",
	// "error"). Defaults to "info".
	// Env: ANALYSIS_LOG_LEVEL
	Level string `env:"LEVEL" validate:"omitempty,oneof=trace debug info warn error"`
}

// Sources describes the property sources layered on top of the embedded
// defaults.
type Sources struct {
	// PropertiesFile is an optional .properties, .yaml/.yml, .json or .toml
	// file with application properties.
	// Env: ANALYSIS_PROPERTIES_FILE
	PropertiesFile string `env:"PROPERTIES_FILE" validate:"omitempty,endswith=.properties|endswith=.yaml|endswith=.yml|endswith=.json|endswith=.toml"`

	// DotEnvFile is an optional .env file with application properties in
	// environment form.
	// Env: ANALYSIS_DOTENV_FILE
	DotEnvFile string `env:"DOTENV_FILE"`

	// EnvPrefix restricts which process environment variables are read as
	// application properties. Defaults to "APP_".
	// Env: ANALYSIS_ENV_PREFIX
	EnvPrefix string `env:"ENV_PREFIX"`

	// Overrides are property values given on the command line with
	// -set key=value. They take precedence over every other source.
	Overrides map[string]string
}

// GetStructuredConfig loads, merges, and validates the bootstrap
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. JSON file (path resolved from sources 2 and 3)
//  2. Environment variables
//  3. Command-line flags parsed from args (without the program name)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
