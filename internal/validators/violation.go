// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strings"
)

// Violation describes a single failed validation rule.
type Violation struct {
	// Object is the property path of the object owning the field
	// (e.g. "app.properties").
	Object string

	// Field is the field path relative to Object
	// (e.g. "report.intervalInDays").
	Field string

	// RejectedValue is the value that failed the rule.
	RejectedValue any

	// Message is the human-readable description of the failed rule.
	Message string

	// Err is the kind of the violation: one of ErrBlank, ErrOutOfRange,
	// ErrMalformedEmail, ErrDomainMismatch or ErrConversion.
	Err error
}

// Path returns the full property path of the violated field, which is also
// the field identifier accepted by [SettingsValidator].
func (v Violation) Path() string {
	return v.Object + "." + v.Field
}

// Error renders the violation in startup-report form, e.g.
//
//	Field error in object 'app.properties' on field 'name': rejected value []; [must not be blank]
func (v Violation) Error() string {
	return fmt.Sprintf("Field error in object '%s' on field '%s': rejected value [%v]; [%s]",
		v.Object, v.Field, v.RejectedValue, v.Message)
}

// Unwrap exposes the violation kind to errors.Is.
func (v Violation) Unwrap() error {
	return v.Err
}

// Violations aggregates every violation found while binding and validating
// settings. A non-empty Violations is an error.
type Violations []Violation

func (vs Violations) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "settings validation failed with %d error(s)", len(vs))
	for _, v := range vs {
		sb.WriteString("\n - ")
		sb.WriteString(v.Error())
	}

	return sb.String()
}

// Unwrap returns ErrInvalidSettings followed by every violation, so both
// errors.Is(err, ErrInvalidSettings) and errors.Is(err, ErrBlank) work on
// the aggregate.
func (vs Violations) Unwrap() []error {
	if len(vs) == 0 {
		return nil
	}

	errs := make([]error, 0, len(vs)+1)
	errs = append(errs, ErrInvalidSettings)
	for _, v := range vs {
		errs = append(errs, v)
	}

	return errs
}

// Err returns vs as an error, or nil when there are no violations.
func (vs Violations) Err() error {
	if len(vs) == 0 {
		return nil
	}

	return vs
}

// Filter returns the violations reported for the given object and field.
func (vs Violations) Filter(object, field string) Violations {
	var out Violations
	for _, v := range vs {
		if v.Object == object && v.Field == field {
			out = append(out, v)
		}
	}

	return out
}

// Paths returns the set of violated field paths.
func (vs Violations) Paths() map[string]struct{} {
	paths := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		paths[v.Path()] = struct{}{}
	}

	return paths
}

func collect(candidates ...*Violation) Violations {
	var out Violations
	for _, c := range candidates {
		if c != nil {
			out = append(out, *c)
		}
	}

	return out
}
