// Package config loads reportgen settings from YAML, .env and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultOutput is the file written when nothing overrides it.
const DefaultOutput = "Naoum_Michail_CAM_C101_W5_Mini-project_report.docx"

// Environment variables that override file settings.
const (
	EnvOutput   = "REPORTGEN_OUTPUT"
	EnvLogLevel = "REPORTGEN_LOG_LEVEL"
)

// Config holds reportgen settings.
type Config struct {
	Output string `yaml:"output"`
	// Format names the renderer ("docx", "html", "md"). Empty means
	// derive it from the output extension.
	Format string `yaml:"format"`
	Log    struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns the settings that reproduce the stock report.
func Default() *Config {
	cfg := &Config{Output: DefaultOutput}
	cfg.Log.Level = "warn"
	return cfg
}

// Load builds a Config from defaults, the optional YAML file at path, a
// .env file in the working directory and environment overrides. An empty
// path skips the YAML file; a named file that does not exist is an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if out := os.Getenv(EnvOutput); out != "" {
		cfg.Output = out
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}

	cfg.Output = strings.TrimSpace(cfg.Output)
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	return cfg, nil
}
