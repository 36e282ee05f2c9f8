// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the explicit validation contract applied to
// application settings before the process is allowed to start.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - Violation: a single failed rule, located by owning object path and
//     field name, carrying the rejected value and a human-readable message.
//   - Violations: the aggregate of every violation found. It is returned as
//     the error value, so callers see all problems at once instead of the
//     first one.
//
// Rules are plain functions ([NotBlank], [IntRange], [Email], [EmailDomain])
// returning a *Violation or nil, so each field check is a visible call
// rather than a struct tag.
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
