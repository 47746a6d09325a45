package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Export.Axis != "y" {
		t.Errorf("expected axis 'y', got %s", cfg.Export.Axis)
	}
	if cfg.Export.Scale != 20 {
		t.Errorf("expected scale 20, got %f", cfg.Export.Scale)
	}
	if cfg.Export.TextureScale != 4 {
		t.Errorf("expected texture scale 4, got %d", cfg.Export.TextureScale)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.ProjectsDir != "" {
		t.Errorf("expected empty projects dir, got %s", cfg.ProjectsDir)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
projects_dir: /data/picocad

export:
  axis: "z"
  scale: 40
  texture_scale: 8

logging:
  level: "debug"
  log_file: "tools.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.ProjectsDir != "/data/picocad" {
		t.Errorf("expected projects dir /data/picocad, got %s", cfg.ProjectsDir)
	}
	if cfg.Export.Axis != "z" {
		t.Errorf("expected axis 'z', got %s", cfg.Export.Axis)
	}
	if cfg.Export.Scale != 40 {
		t.Errorf("expected scale 40, got %f", cfg.Export.Scale)
	}
	if cfg.Export.TextureScale != 8 {
		t.Errorf("expected texture scale 8, got %d", cfg.Export.TextureScale)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "tools.log" {
		t.Errorf("expected log file 'tools.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
export:
  scale: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for an explicit missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}
