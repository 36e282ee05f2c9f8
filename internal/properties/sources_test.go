package properties

import (
	"testing"

	"github.com/MKhiriev/analysis-app/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourceNames(l *Layered) []string {
	names := make([]string, 0, len(l.Sources()))
	for _, s := range l.Sources() {
		names = append(names, s.Name())
	}
	return names
}

func TestNewSources(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Sources
		want []string
	}{
		{
			name: "defaults and environment only",
			cfg:  config.Sources{},
			want: []string{
				"embedded defaults [application.properties]",
				"environment [APP_*]",
			},
		},
		{
			name: "every source",
			cfg: config.Sources{
				PropertiesFile: "application.yaml",
				DotEnvFile:     ".env",
				EnvPrefix:      "ANALYSIS_APP_",
				Overrides:      map[string]string{"app.properties.name": "x"},
			},
			want: []string{
				"embedded defaults [application.properties]",
				"file [application.yaml]",
				"dotenv [.env]",
				"environment [ANALYSIS_APP_*]",
				"command line overrides",
			},
		},
		{
			name: "empty overrides are skipped",
			cfg: config.Sources{
				EnvPrefix: "APP_",
				Overrides: map[string]string{},
			},
			want: []string{
				"embedded defaults [application.properties]",
				"environment [APP_*]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layered := NewSources(tt.cfg)
			require.NotNil(t, layered)
			assert.Equal(t, tt.want, sourceNames(layered))
		})
	}
}
