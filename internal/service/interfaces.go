package service

import (
	"context"

	"github.com/MKhiriev/analysis-app/models"
)

type SettingsService interface {
	// Load reads every property source, binds the settings tree and
	// validates it. Any violation fails the whole load.
	Load(ctx context.Context) (*models.Settings, error)
}
