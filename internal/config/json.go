package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names.
type StructuredJSONConfig struct {
	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Sources struct {
		PropertiesFile string            `json:"properties_file"`
		DotEnvFile     string            `json:"dotenv_file"`
		EnvPrefix      string            `json:"env_prefix"`
		Overrides      map[string]string `json:"overrides,omitempty"`
	} `json:"sources,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	decoder := json.NewDecoder(jsonFile)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		Sources: Sources{
			PropertiesFile: jsonCfg.Sources.PropertiesFile,
			DotEnvFile:     jsonCfg.Sources.DotEnvFile,
			EnvPrefix:      jsonCfg.Sources.EnvPrefix,
			Overrides:      jsonCfg.Sources.Overrides,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
