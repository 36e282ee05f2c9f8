// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package binder converts layered flat properties into the typed settings
// tree.
//
// Binding is done by github.com/caarlos0/env over the normalised property
// map: every settings root is parsed with its own prefix, nested objects use
// `envPrefix` tags and leaves use `env` tags. A value that cannot be
// converted to its field type does not abort binding; it is reported as a
// [validators.Violation] with [validators.ErrConversion] and the field keeps
// its zero value.
package binder

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/analysis-app/internal/app"
	"github.com/MKhiriev/analysis-app/internal/properties"
	"github.com/MKhiriev/analysis-app/internal/validators"
	"github.com/MKhiriev/analysis-app/models"
	"github.com/caarlos0/env/v11"
)

// root is a settings object bound from its own property prefix.
type root struct {
	object string
	prefix string
	target any
}

// field locates a leaf of a root object.
type field struct {
	path   string
	envKey string
	kind   reflect.Kind
}

func roots(s *models.Settings) []root {
	return []root{
		{
			object: validators.ObjectAppProperties,
			prefix: properties.Normalize(validators.ObjectAppProperties) + "_",
			target: &s.App,
		},
		{
			object: validators.ObjectThirdPartyProperties,
			prefix: properties.Normalize(validators.ObjectThirdPartyProperties) + "_",
			target: &s.ThirdParty,
		},
	}
}

// Bind builds a Settings from props. Keys may be in dotted, kebab-case,
// camelCase or environment form.
//
// Values bound to non-string fields are trimmed before conversion; string
// values are kept verbatim. Conversion failures are returned as violations
// next to the partially bound settings. Any other failure is returned as an
// error.
func Bind(props properties.Properties) (*models.Settings, validators.Violations, error) {
	raw := props.Normalized()

	settings := &models.Settings{}
	var violations validators.Violations
	for _, r := range roots(settings) {
		fields := make(map[string]field)
		indexFields(reflect.TypeOf(r.target).Elem(), "", r.prefix, fields)

		err := env.ParseWithOptions(r.target, env.Options{
			Environment: trimScalars(raw, fields),
			Prefix:      r.prefix,
		})
		if err == nil {
			continue
		}

		converted, err := conversionViolations(r, fields, raw, err)
		if err != nil {
			return nil, nil, fmt.Errorf("error binding %s: %w", r.object, err)
		}
		violations = append(violations, converted...)
	}

	return settings, violations, nil
}

// trimScalars returns a copy of props with surrounding whitespace removed
// from the values of non-string fields.
func trimScalars(props properties.Properties, fields map[string]field) map[string]string {
	out := maps.Clone(props)
	for _, f := range fields {
		if f.kind == reflect.String {
			continue
		}
		if v, ok := out[f.envKey]; ok {
			out[f.envKey] = strings.TrimSpace(v)
		}
	}

	return out
}

// conversionViolations turns the parse errors reported for r into
// violations carrying the raw rejected values. It fails when err holds
// anything but parse errors.
func conversionViolations(r root, fields map[string]field, props properties.Properties, err error) (validators.Violations, error) {
	var aggregate env.AggregateError
	if !errors.As(err, &aggregate) {
		return nil, err
	}

	violations := make(validators.Violations, 0, len(aggregate.Errors))
	for _, e := range aggregate.Errors {
		var parseErr env.ParseError
		if !errors.As(e, &parseErr) {
			return nil, e
		}

		f, ok := fields[parseErr.Name]
		if !ok {
			return nil, e
		}

		violations = append(violations, validators.Violation{
			Object:        r.object,
			Field:         f.path,
			RejectedValue: props[f.envKey],
			Message:       fmt.Sprintf(app.MsgFailedToConvert, parseErr.Type.String()),
			Err:           fmt.Errorf("%w: %w", validators.ErrConversion, parseErr.Err),
		})
	}

	return violations, nil
}

// indexFields maps the Go name of every tagged leaf of t to its property
// path relative to the root and its normalised key.
func indexFields(t reflect.Type, pathPrefix, envPrefix string, out map[string]field) {
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		if sf.Type.Kind() == reflect.Struct {
			indexFields(sf.Type, pathPrefix+lowerFirst(sf.Name)+".", envPrefix+sf.Tag.Get("envPrefix"), out)
			continue
		}

		key, _, _ := strings.Cut(sf.Tag.Get("env"), ",")
		if key == "" {
			continue
		}
		out[sf.Name] = field{
			path:   pathPrefix + lowerFirst(sf.Name),
			envKey: envPrefix + key,
			kind:   sf.Type.Kind(),
		}
	}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
