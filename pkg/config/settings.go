package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/neurotune/neurotune/pkg/defaults"
)

// Default process-level settings.
const (
	DefaultModel       = "deepseek-ai/DeepSeek-R1-Distill-Llama-8B"
	DefaultEndpoint    = "http://localhost:8000"
	DefaultMetricsPath = "/metrics"
	DefaultConfigDir   = "configs"
	DefaultResultsDir  = "results"
)

// Environment variable names recognized by Load.
const (
	EnvModel       = "NEUROTUNE_MODEL"
	EnvEndpoint    = "NEUROTUNE_ENDPOINT"
	EnvMetricsPath = "NEUROTUNE_METRICS_PATH"
	EnvInterval    = "NEUROTUNE_INTERVAL"
	EnvConfigDir   = "NEUROTUNE_CONFIG_DIR"
	EnvResultsDir  = "NEUROTUNE_RESULTS_DIR"
)

// Settings holds process-level configuration shared across commands.
type Settings struct {
	// Model is the serving model identifier passed to vLLM.
	Model string

	// Endpoint is the base URL of the vLLM server.
	Endpoint string

	// MetricsPath is the metrics endpoint path on the vLLM server.
	MetricsPath string

	// Interval is the monitor polling interval.
	Interval time.Duration

	// ConfigDir is the directory for persisted parameter files.
	ConfigDir string

	// ResultsDir is the directory for load test reports.
	ResultsDir string
}

// DefaultSettings returns settings with all defaults and no environment
// overrides applied.
func DefaultSettings() Settings {
	return Settings{
		Model:       DefaultModel,
		Endpoint:    DefaultEndpoint,
		MetricsPath: DefaultMetricsPath,
		Interval:    defaults.MonitorInterval,
		ConfigDir:   DefaultConfigDir,
		ResultsDir:  DefaultResultsDir,
	}
}

// Load returns the default settings with NEUROTUNE_* environment overrides
// applied. Malformed values are logged and ignored.
func Load() Settings {
	s := DefaultSettings()
	s.loadFromEnv()
	return s
}

func (s *Settings) loadFromEnv() {
	if v := os.Getenv(EnvModel); v != "" {
		s.Model = v
	}
	if v := os.Getenv(EnvEndpoint); v != "" {
		s.Endpoint = v
	}
	if v := os.Getenv(EnvMetricsPath); v != "" {
		s.MetricsPath = v
	}
	if v := os.Getenv(EnvInterval); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			s.Interval = d
		} else {
			slog.Warn("ignoring malformed interval",
				slog.String("env", EnvInterval), slog.String("value", v))
		}
	}
	if v := os.Getenv(EnvConfigDir); v != "" {
		s.ConfigDir = v
	}
	if v := os.Getenv(EnvResultsDir); v != "" {
		s.ResultsDir = v
	}
}

// MetricsURL returns the full URL of the vLLM metrics endpoint.
func (s Settings) MetricsURL() string {
	return s.Endpoint + s.MetricsPath
}
