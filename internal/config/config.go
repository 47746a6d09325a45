// Package config handles tool configuration loading.
package config

// Config holds all tool settings.
type Config struct {
	ProjectsDir string        `yaml:"projects_dir"` // Overrides the pico-8 save directory
	Export      ExportConfig  `yaml:"export"`
	Logging     LoggingConfig `yaml:"logging"`
}

// ExportConfig holds default export settings.
type ExportConfig struct {
	Axis         string  `yaml:"axis"`
	Scale        float64 `yaml:"scale"`
	TextureScale int     `yaml:"texture_scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			Axis:         "y",
			Scale:        20,
			TextureScale: 4,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
