// Package config loads server configuration from config/server.yaml with
// environment overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Assumptions are the default scenario values the presentation layer starts
// from. They mirror the calculator's historical widget defaults.
type Assumptions struct {
	LandArea         float64 `yaml:"land_area"`
	ZoningID         string  `yaml:"zoning_id"`
	ParkingZone      string  `yaml:"parking_zone"`
	MarketPrice      float64 `yaml:"market_price"`
	ConstructionCost float64 `yaml:"construction_cost"`
	InclusionaryPct  float64 `yaml:"inclusionary_pct"`
	DensityBonusPct  float64 `yaml:"density_bonus_pct"`
}

// Config holds application configuration.
type Config struct {
	Port     string      `yaml:"port"`
	LogLevel string      `yaml:"log_level"`
	Defaults Assumptions `yaml:"defaults"`
}

// Load reads the yaml config at path if it exists, then applies environment
// overrides (PORT, LOG_LEVEL). A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Port:     "8080",
		LogLevel: "info",
		Defaults: Assumptions{
			LandArea:         1000,
			ZoningID:         "GR2",
			ParkingZone:      "Standard",
			MarketPrice:      45000,
			ConstructionCost: 17000,
			InclusionaryPct:  20,
			DensityBonusPct:  20,
		},
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}
