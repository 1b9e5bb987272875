//nolint:testpackage // exercises unexported default helpers
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Service.Name != defaultServiceName {
		t.Errorf("Service.Name = %q, want %q", cfg.Service.Name, defaultServiceName)
	}
	if cfg.Server.Port != defaultServicePort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, defaultServicePort)
	}
	if cfg.Server.MaxBatchSize != defaultMaxBatchSize {
		t.Errorf("Server.MaxBatchSize = %d, want %d", cfg.Server.MaxBatchSize, defaultMaxBatchSize)
	}
	if cfg.Database.Path != defaultDBPath {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, defaultDBPath)
	}
	if cfg.Search.Enabled {
		t.Error("Search.Enabled = true, want false by default")
	}
	if cfg.Classifier.LatencyMax != 0 {
		t.Errorf("Classifier.LatencyMax = %v, want 0", cfg.Classifier.LatencyMax)
	}
	if cfg.Logging.Level != defaultLogLevel {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, defaultLogLevel)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != defaultServicePort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, defaultServicePort)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := []byte(`
service:
  name: custom-classifier
server:
  port: 9999
  read_timeout: 5s
classifier:
  latency_min: 100ms
  latency_max: 300ms
search:
  enabled: true
  model: test-model
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Service.Name != "custom-classifier" {
		t.Errorf("Service.Name = %q, want custom-classifier", cfg.Service.Name)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Classifier.LatencyMax != 300*time.Millisecond {
		t.Errorf("Classifier.LatencyMax = %v, want 300ms", cfg.Classifier.LatencyMax)
	}
	if !cfg.Search.Enabled {
		t.Error("Search.Enabled = false, want true")
	}
	if cfg.Search.Model != "test-model" {
		t.Errorf("Search.Model = %q, want test-model", cfg.Search.Model)
	}
	// Unset values still receive defaults.
	if cfg.Server.WriteTimeout != defaultWriteTimeoutSec*time.Second {
		t.Errorf("Server.WriteTimeout = %v, want default", cfg.Server.WriteTimeout)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CLASSIFIER_PORT", "7777")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEARCH_ENABLED", "yes")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 7777 {
		t.Errorf("Server.Port = %d, want 7777", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if !cfg.Search.Enabled {
		t.Error("Search.Enabled = false, want true from env")
	}
}

func TestParseBool(t *testing.T) {
	for _, trueVal := range []string{"true", "TRUE", "1", "yes", " Yes "} {
		if !parseBool(trueVal) {
			t.Errorf("parseBool(%q) = false, want true", trueVal)
		}
	}
	for _, falseVal := range []string{"false", "0", "no", "", "maybe"} {
		if parseBool(falseVal) {
			t.Errorf("parseBool(%q) = true, want false", falseVal)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	if got := GetConfigPath("default.yml"); got != "default.yml" {
		t.Errorf("GetConfigPath = %q, want default.yml", got)
	}
	t.Setenv("CONFIG_PATH", "/etc/classifier/config.yml")
	if got := GetConfigPath("default.yml"); got != "/etc/classifier/config.yml" {
		t.Errorf("GetConfigPath = %q, want env value", got)
	}
}
