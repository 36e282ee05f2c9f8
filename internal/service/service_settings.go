// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/analysis-app/internal/binder"
	"github.com/MKhiriev/analysis-app/internal/logger"
	"github.com/MKhiriev/analysis-app/internal/properties"
	"github.com/MKhiriev/analysis-app/internal/validators"
	"github.com/MKhiriev/analysis-app/models"
)

type settingsService struct {
	source    properties.Source
	validator validators.Validator

	logger *logger.Logger
}

func NewSettingsService(source properties.Source, validator validators.Validator, logger *logger.Logger) SettingsService {
	return &settingsService{
		source:    source,
		validator: validator,
		logger:    logger.GetChildLogger("settings"),
	}
}

func (s *settingsService) Load(ctx context.Context) (*models.Settings, error) {
	props, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadSources, err)
	}

	settings, violations, err := binder.Bind(props)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBindSettings, err)
	}

	// a field that failed conversion holds a zero value; checking it again
	// would only repeat the failure
	failed := violations.Paths()
	fields := slices.DeleteFunc(validators.SettingsFields(), func(field string) bool {
		_, ok := failed[field]
		return ok
	})

	if len(fields) > 0 {
		if err := s.validator.Validate(ctx, settings, fields...); err != nil {
			var found validators.Violations
			if !errors.As(err, &found) {
				return nil, fmt.Errorf("error validating settings: %w", err)
			}
			violations = append(violations, found...)
		}
	}

	if len(violations) > 0 {
		for _, v := range violations {
			s.logger.Error().
				Str("object", v.Object).
				Str("field", v.Field).
				Interface("rejected", v.RejectedValue).
				Str("message", v.Message).
				Msg("invalid setting")
		}
		return nil, fmt.Errorf("%w: %w", ErrBindSettings, violations)
	}

	s.logger.Debug().
		Str("source", s.source.Name()).
		Int("properties", len(props)).
		Msg("settings loaded")

	return settings, nil
}
