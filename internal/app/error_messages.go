// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// analysis-app settings pipeline.
//
// All Msg* constants are human-readable violation messages written into the
// startup report and log entries. Keeping them in one place ensures
// consistent wording between the validators, the binder and the tests.
package app

const (
	// MsgMustNotBeBlank is reported when a required string property is
	// missing, empty or consists of whitespace only.
	MsgMustNotBeBlank = "must not be blank"

	// MsgMustBeLessThanOrEqual is reported when an integer property exceeds
	// its upper bound. Formatted with the bound.
	MsgMustBeLessThanOrEqual = "must be less than or equal to %d"

	// MsgMustBeGreaterThanOrEqual is reported when an integer property is
	// below its lower bound. Formatted with the bound.
	MsgMustBeGreaterThanOrEqual = "must be greater than or equal to %d"

	// MsgMustBeWellFormedEmail is reported when a property declared as an
	// email address does not match the email grammar.
	MsgMustBeWellFormedEmail = "must be a well-formed email address"

	// MsgEmailMustContainDomain is reported when a well-formed email address
	// does not belong to the required domain. Formatted with the domain
	// suffix including the leading "@".
	MsgEmailMustContainDomain = "The email address must contain [%s] domain"

	// MsgFailedToConvert is reported when a raw property value cannot be
	// converted to the type of its target field. Formatted with the target
	// type name.
	MsgFailedToConvert = "failed to convert value of type 'string' to required type '%s'"
)
