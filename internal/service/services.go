package service

import (
	"github.com/MKhiriev/analysis-app/internal/logger"
	"github.com/MKhiriev/analysis-app/internal/properties"
	"github.com/MKhiriev/analysis-app/internal/validators"
)

type Services struct {
	SettingsService SettingsService
}

func NewServices(source properties.Source, logger *logger.Logger) *Services {
	return &Services{
		SettingsService: NewSettingsService(source, validators.NewSettingsValidator(), logger),
	}
}
