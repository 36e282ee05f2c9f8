// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package properties loads flat dotted configuration keys from the places an
// operator can put them and layers them into a single view.
//
// Sources, lowest precedence first, as assembled by [NewSources]:
//  1. embedded defaults (application.properties shipped with the binary)
//  2. a property file (.properties, .yaml/.yml, .json, .toml)
//  3. a .env file
//  4. the process environment
//  5. command-line overrides
//
// Keys are compared in their normalised form (see [Normalize]), so
// "app.third-party.properties.name" in a file and
// APP_THIRD_PARTY_PROPERTIES_NAME in the environment address the same
// property.
package properties

//go:generate mockgen -source=interfaces.go -destination=../mock/source_mock.go -package=mock

import (
	"context"
	"maps"
	"slices"
)

// Properties is a flat mapping of property keys to raw string values.
type Properties map[string]string

// Keys returns the keys of p in lexical order.
func (p Properties) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Normalized returns a copy of p keyed by [Normalize]d keys. When two keys
// collapse into one, the lexically last original key wins.
func (p Properties) Normalized() Properties {
	out := make(Properties, len(p))
	for _, k := range p.Keys() {
		out[Normalize(k)] = p[k]
	}

	return out
}

// Source is a named provider of properties.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string

	// Load reads the properties of the source.
	Load(ctx context.Context) (Properties, error)
}
