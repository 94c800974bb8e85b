package config

import (
	"fmt"

	"github.com/abcnoodle/marketintel/internal/dataset"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = ".marketintel.yml"

// EnvPrefix prefixes environment overrides: MARKETINTEL_PORT -> port.
const EnvPrefix = "MARKETINTEL_"

// Log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config is the top-level marketintel configuration, corresponding to
// .marketintel.yml.
type Config struct {
	Title           string   `yaml:"title" koanf:"title"`
	DataDir         string   `yaml:"data_dir" koanf:"data_dir"`
	InsightsSource  string   `yaml:"insights_source" koanf:"insights_source"`
	DashboardSource string   `yaml:"dashboard_source" koanf:"dashboard_source"`
	Port            int      `yaml:"port" koanf:"port"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	OutputDir       string   `yaml:"output_dir" koanf:"output_dir"`
	Watch           bool     `yaml:"watch" koanf:"watch"`
	WatchPatterns   []string `yaml:"watch_patterns" koanf:"watch_patterns"`
	LogLevel        string   `yaml:"log_level" koanf:"log_level"`
	LogFormat       string   `yaml:"log_format" koanf:"log_format"`
	HistoryDB       string   `yaml:"history_db" koanf:"history_db"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:           "ABC Noodle Co Market Intelligence",
		DataDir:         ".",
		InsightsSource:  dataset.InsightsFile,
		DashboardSource: dataset.DashboardFile,
		Port:            8080,
		OutputDir:       "site",
		WatchPatterns:   []string{"*.json"},
		LogLevel:        "info",
		LogFormat:       FormatJSON,
		HistoryDB:       ".marketintel/history.db",
	}
}

// Sources resolves the two dataset locations against DataDir.
func (c *Config) Sources() dataset.Sources {
	return dataset.SourcesIn(c.DataDir, c.InsightsSource, c.DashboardSource)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
