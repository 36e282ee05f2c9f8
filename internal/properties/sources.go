package properties

import (
	"github.com/MKhiriev/analysis-app/internal/config"
)

const overridesName = "command line overrides"

// NewSources assembles the property sources described by cfg in precedence
// order: embedded defaults, property file, .env file, environment and
// command-line overrides. Optional sources are skipped when not configured.
func NewSources(cfg config.Sources) *Layered {
	sources := []Source{Defaults()}

	if cfg.PropertiesFile != "" {
		sources = append(sources, NewFileSource(cfg.PropertiesFile))
	}
	if cfg.DotEnvFile != "" {
		sources = append(sources, NewDotEnvSource(cfg.DotEnvFile))
	}

	prefix := cfg.EnvPrefix
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	sources = append(sources, NewEnvironmentSource(prefix))

	if len(cfg.Overrides) > 0 {
		sources = append(sources, NewMapSource(overridesName, cfg.Overrides))
	}

	return NewLayered(sources...)
}
