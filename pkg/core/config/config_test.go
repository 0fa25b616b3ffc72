package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Defaults.ZoningID != "GR2" || cfg.Defaults.LandArea != 1000 {
		t.Errorf("unexpected default assumptions: %+v", cfg.Defaults)
	}
	if cfg.Defaults.MarketPrice != 45000 || cfg.Defaults.ConstructionCost != 17000 {
		t.Errorf("unexpected default market assumptions: %+v", cfg.Defaults)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	data := []byte("port: \"9090\"\nlog_level: debug\ndefaults:\n  land_area: 2500\n  zoning_id: MU2\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.LogLevel != "debug" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Defaults.LandArea != 2500 || cfg.Defaults.ZoningID != "MU2" {
		t.Errorf("nested defaults not applied: %+v", cfg.Defaults)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7777")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7777" {
		t.Errorf("expected env port 7777, got %s", cfg.Port)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected env log level warn, got %s", cfg.LogLevel)
	}
}
