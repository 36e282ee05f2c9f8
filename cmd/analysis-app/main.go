package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/analysis-app/internal/config"
	"github.com/MKhiriev/analysis-app/internal/logger"
	"github.com/MKhiriev/analysis-app/internal/properties"
	"github.com/MKhiriev/analysis-app/internal/service"
	"github.com/MKhiriev/analysis-app/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("analysis-app")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := log.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())

	services := service.NewServices(properties.NewSources(cfg.Sources), log)
	settings, err := services.SettingsService.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("application failed to start: invalid settings")
	}

	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Any("settings", settings).
		Msg("settings loaded")

	out, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding settings")
	}
	fmt.Println(string(out))
}
