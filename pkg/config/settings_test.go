package config

import (
	"testing"
	"time"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Model != DefaultModel {
		t.Errorf("Model = %s, want %s", s.Model, DefaultModel)
	}
	if s.Endpoint != "http://localhost:8000" {
		t.Errorf("Endpoint = %s, want http://localhost:8000", s.Endpoint)
	}
	if s.MetricsPath != "/metrics" {
		t.Errorf("MetricsPath = %s, want /metrics", s.MetricsPath)
	}
	if s.Interval != 2*time.Second {
		t.Errorf("Interval = %v, want 2s", s.Interval)
	}
	if s.ConfigDir != "configs" {
		t.Errorf("ConfigDir = %s, want configs", s.ConfigDir)
	}
	if s.ResultsDir != "results" {
		t.Errorf("ResultsDir = %s, want results", s.ResultsDir)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvModel, "meta-llama/Llama-3.1-8B")
	t.Setenv(EnvEndpoint, "http://10.0.1.17:8000")
	t.Setenv(EnvMetricsPath, "/custom/metrics")
	t.Setenv(EnvInterval, "500ms")
	t.Setenv(EnvConfigDir, "/etc/neurotune")
	t.Setenv(EnvResultsDir, "/var/lib/neurotune")

	s := Load()

	if s.Model != "meta-llama/Llama-3.1-8B" {
		t.Errorf("Model = %s, want env override", s.Model)
	}
	if s.Endpoint != "http://10.0.1.17:8000" {
		t.Errorf("Endpoint = %s, want env override", s.Endpoint)
	}
	if s.MetricsPath != "/custom/metrics" {
		t.Errorf("MetricsPath = %s, want env override", s.MetricsPath)
	}
	if s.Interval != 500*time.Millisecond {
		t.Errorf("Interval = %v, want 500ms", s.Interval)
	}
	if s.ConfigDir != "/etc/neurotune" {
		t.Errorf("ConfigDir = %s, want env override", s.ConfigDir)
	}
	if s.ResultsDir != "/var/lib/neurotune" {
		t.Errorf("ResultsDir = %s, want env override", s.ResultsDir)
	}
}

func TestLoad_MalformedInterval(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not a duration", value: "soon"},
		{name: "negative", value: "-2s"},
		{name: "zero", value: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvInterval, tt.value)

			s := Load()
			if s.Interval != 2*time.Second {
				t.Errorf("Interval = %v, want default 2s for %q", s.Interval, tt.value)
			}
		})
	}
}

func TestSettings_MetricsURL(t *testing.T) {
	s := Settings{Endpoint: "http://localhost:8000", MetricsPath: "/metrics"}

	if got := s.MetricsURL(); got != "http://localhost:8000/metrics" {
		t.Errorf("MetricsURL() = %s, want http://localhost:8000/metrics", got)
	}
}
