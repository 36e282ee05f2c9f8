package config

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"strings"
)

// PropertyOverrides collects repeated -set key=value flags.
// It implements the flag.Value interface.
type PropertyOverrides map[string]string

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-c/-config json file path with bootstrap configs
//	-l/-log-level minimum log level
//	-p/-properties application property file path
//	-e/-dotenv .env file path with application properties
//	-env-prefix environment variable prefix for application properties
//	-set key=value application property override (repeatable)
func ParseFlags(args []string) (*StructuredConfig, error) {
	var jsonConfigPath string
	var logLevel string
	var propertiesFile string
	var dotEnvFile string
	var envPrefix string
	overrides := PropertyOverrides{}

	fs := flag.NewFlagSet("analysis-app", flag.ContinueOnError)
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "l", "", "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (alias)")
	fs.StringVar(&propertiesFile, "p", "", "Application property file path")
	fs.StringVar(&propertiesFile, "properties", "", "Application property file path (alias)")
	fs.StringVar(&dotEnvFile, "e", "", ".env file path")
	fs.StringVar(&dotEnvFile, "dotenv", "", ".env file path (alias)")
	fs.StringVar(&envPrefix, "env-prefix", "", "Environment variable prefix for application properties")
	fs.Var(&overrides, "set", "Application property override key=value (repeatable)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		Log: Log{
			Level: logLevel,
		},
		Sources: Sources{
			PropertiesFile: propertiesFile,
			DotEnvFile:     dotEnvFile,
			EnvPrefix:      envPrefix,
		},
		JSONFilePath: jsonConfigPath,
	}
	if len(overrides) > 0 {
		cfg.Sources.Overrides = overrides
	}

	return cfg, nil
}

// String returns the overrides as comma-separated key=value pairs in key
// order.
func (o *PropertyOverrides) String() string {
	if o == nil || len(*o) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(*o))
	for k, v := range *o {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)

	return strings.Join(pairs, ",")
}

// Set parses the input string of form key=value and records the override.
// The value may be empty ("key=") and may itself contain '='; the key must
// not be blank.
func (o *PropertyOverrides) Set(s string) error {
	key, value, found := strings.Cut(s, "=")
	if !found {
		return errors.New("need override in a form `key=value`")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("override key must not be blank")
	}

	if *o == nil {
		*o = PropertyOverrides{}
	}
	(*o)[key] = value
	return nil
}
