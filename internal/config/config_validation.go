// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	defaultLogLevel  = "info"
	defaultEnvPrefix = "APP_"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	if cfg.Sources.EnvPrefix == "" {
		cfg.Sources.EnvPrefix = defaultEnvPrefix
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// `validate` tags of its fields before it is used at startup.
//
// Override keys must not be blank.
//
// Returns nil if the configuration is valid, or an error wrapping
// ErrInvalidLogConfigs or ErrInvalidSourcesConfigs that names the failing
// fields.
func (cfg *StructuredConfig) validate() error {
	var errs []error
	for key := range cfg.Sources.Overrides {
		if strings.TrimSpace(key) == "" {
			errs = append(errs, fmt.Errorf("%w: override with blank key", ErrInvalidSourcesConfigs))
		}
	}

	err := structValidator.Struct(cfg)
	if err == nil {
		return errors.Join(errs...)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating configs: %w", err)
	}

	for _, fe := range fieldErrs {
		group := ErrInvalidSourcesConfigs
		if strings.HasPrefix(fe.Namespace(), "StructuredConfig.Log.") {
			group = ErrInvalidLogConfigs
		}
		errs = append(errs, fmt.Errorf("%w: field %s failed on '%s' with value %q",
			group, fe.Namespace(), fe.Tag(), fmt.Sprint(fe.Value())))
	}

	return errors.Join(errs...)
}
