package properties

import (
	"context"
	"maps"
)

// MapSource serves a fixed set of properties held in memory.
type MapSource struct {
	name  string
	props Properties
}

// NewMapSource returns a source serving a copy of props.
func NewMapSource(name string, props map[string]string) *MapSource {
	return &MapSource{
		name:  name,
		props: maps.Clone(Properties(props)),
	}
}

func (s *MapSource) Name() string {
	return s.name
}

// Load returns a copy, so callers cannot alter the source.
func (s *MapSource) Load(ctx context.Context) (Properties, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := maps.Clone(s.props)
	if out == nil {
		out = make(Properties)
	}

	return out, nil
}
