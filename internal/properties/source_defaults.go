package properties

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
)

//go:embed application.properties
var defaultProperties []byte

const defaultsName = "embedded defaults [application.properties]"

type embeddedSource struct {
	name string
	data []byte
}

// Defaults returns the source of the built-in application.properties.
func Defaults() Source {
	return &embeddedSource{
		name: defaultsName,
		data: defaultProperties,
	}
}

func (s *embeddedSource) Name() string {
	return s.name
}

func (s *embeddedSource) Load(ctx context.Context) (Properties, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	props, err := parseProperties(bytes.NewReader(s.data))
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", s.name, err)
	}

	return props, nil
}
