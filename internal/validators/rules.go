// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/analysis-app/internal/app"
	"github.com/go-playground/validator/v10"
)

// emailTag is the go-playground/validator tag holding the email grammar.
const emailTag = "email"

var grammar = validator.New(validator.WithRequiredStructEnabled())

// NotBlank reports a violation when value is empty or whitespace only.
func NotBlank(object, field, value string) *Violation {
	if strings.TrimSpace(value) != "" {
		return nil
	}

	return &Violation{
		Object:        object,
		Field:         field,
		RejectedValue: value,
		Message:       app.MsgMustNotBeBlank,
		Err:           ErrBlank,
	}
}

// IntRange reports a violation when value lies outside [minValue, maxValue].
// The lower bound is checked first.
func IntRange(object, field string, value, minValue, maxValue int) *Violation {
	var msg string
	switch {
	case value < minValue:
		msg = fmt.Sprintf(app.MsgMustBeGreaterThanOrEqual, minValue)
	case value > maxValue:
		msg = fmt.Sprintf(app.MsgMustBeLessThanOrEqual, maxValue)
	default:
		return nil
	}

	return &Violation{
		Object:        object,
		Field:         field,
		RejectedValue: value,
		Message:       msg,
		Err:           ErrOutOfRange,
	}
}

// Email reports a violation when value is not a well-formed email address.
// An empty value is accepted; combine with [NotBlank] to require it.
func Email(object, field, value string) *Violation {
	if value == "" {
		return nil
	}
	if err := grammar.Var(value, emailTag); err == nil {
		return nil
	}

	return &Violation{
		Object:        object,
		Field:         field,
		RejectedValue: value,
		Message:       app.MsgMustBeWellFormedEmail,
		Err:           ErrMalformedEmail,
	}
}

// EmailDomain reports a violation when value does not end with domain
// (e.g. "@analysisapp.com"). The comparison ignores case. It does not check
// the email grammar; run [Email] first.
func EmailDomain(object, field, value, domain string) *Violation {
	if value == "" || strings.HasSuffix(strings.ToLower(value), strings.ToLower(domain)) {
		return nil
	}

	return &Violation{
		Object:        object,
		Field:         field,
		RejectedValue: value,
		Message:       fmt.Sprintf(app.MsgEmailMustContainDomain, domain),
		Err:           ErrDomainMismatch,
	}
}
