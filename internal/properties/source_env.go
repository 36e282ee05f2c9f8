package properties

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvPrefix limits the environment source to application keys.
const DefaultEnvPrefix = "APP_"

// EnvironmentSource reads properties from the process environment. Only
// variables starting with the prefix are kept, with their names unchanged
// (APP_PROPERTIES_NAME); [Normalize] makes them comparable with dotted keys.
type EnvironmentSource struct {
	prefix  string
	environ func() []string
}

// NewEnvironmentSource returns a source over os.Environ. An empty prefix
// keeps every variable.
func NewEnvironmentSource(prefix string) *EnvironmentSource {
	return &EnvironmentSource{
		prefix:  prefix,
		environ: os.Environ,
	}
}

func (s *EnvironmentSource) Name() string {
	if s.prefix == "" {
		return "environment"
	}
	return "environment [" + s.prefix + "*]"
}

func (s *EnvironmentSource) Load(ctx context.Context) (Properties, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	props := make(Properties)
	for k, v := range env.ToMap(s.environ()) {
		if strings.HasPrefix(k, s.prefix) {
			props[k] = v
		}
	}

	return props, nil
}

// DotEnvSource reads properties from a .env file.
type DotEnvSource struct {
	path string
}

// NewDotEnvSource returns a source reading the .env file at path.
func NewDotEnvSource(path string) *DotEnvSource {
	return &DotEnvSource{path: path}
}

func (s *DotEnvSource) Name() string {
	return "dotenv [" + s.path + "]"
}

func (s *DotEnvSource) Load(ctx context.Context) (Properties, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values, err := godotenv.Read(s.path)
	if err != nil {
		return nil, fmt.Errorf("error reading dotenv file: %w", err)
	}

	return Properties(values), nil
}
