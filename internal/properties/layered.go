package properties

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/analysis-app/internal/logger"
)

// Layered merges several sources into one. Sources are loaded in order and a
// key present in a later source replaces the value of an earlier one, even
// when the new value is empty. The merged result is keyed by [Normalize]d
// keys.
type Layered struct {
	sources []Source
}

// NewLayered returns a source merging sources, lowest precedence first.
func NewLayered(sources ...Source) *Layered {
	return &Layered{sources: sources}
}

func (l *Layered) Name() string {
	names := make([]string, 0, len(l.sources))
	for _, s := range l.sources {
		names = append(names, s.Name())
	}

	return "layered [" + strings.Join(names, " < ") + "]"
}

// Sources returns the layered sources, lowest precedence first.
func (l *Layered) Sources() []Source {
	return l.sources
}

func (l *Layered) Load(ctx context.Context) (Properties, error) {
	log := logger.FromContext(ctx)

	merged := make(Properties)
	origin := make(map[string]string)
	for _, source := range l.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		props, err := source.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", source.Name(), err)
		}

		for _, key := range props.Keys() {
			normalized := Normalize(key)
			if normalized == "" {
				continue
			}

			if previous, ok := origin[normalized]; ok {
				log.Debug().
					Str("key", normalized).
					Str("source", source.Name()).
					Str("overrides", previous).
					Msg("property overridden")
			}

			merged[normalized] = props[key]
			origin[normalized] = source.Name()
		}

		log.Debug().
			Str("source", source.Name()).
			Int("properties", len(props)).
			Msg("property source loaded")
	}

	return merged, nil
}
