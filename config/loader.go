package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Defaults match the original deployment: port 5001, frequency band
// 917604.OX, $88/month plan tier.
func defaults() *ServiceConfig {
	return &ServiceConfig{
		Port:          "5001",
		FrequencyBand: "917604.OX",
		PlanTier:      "$88/month",
	}
}

// Load reads the service configuration from the given JSON file. A missing
// file is not an error; defaults are used. The PORT environment variable
// overrides the configured port either way.
func Load(path string) (*ServiceConfig, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if cfg.Port == "" {
		cfg.Port = defaults().Port
	}
	if cfg.FrequencyBand == "" {
		cfg.FrequencyBand = defaults().FrequencyBand
	}
	if cfg.PlanTier == "" {
		cfg.PlanTier = defaults().PlanTier
	}

	return cfg, nil
}
