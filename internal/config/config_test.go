package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("Default config should validate cleanly, got %v", errs)
	}
	if cfg.Reports.DefaultName != "system_info" {
		t.Errorf("DefaultName = %q, want system_info", cfg.Reports.DefaultName)
	}
	if !cfg.Reports.Manifest {
		t.Error("Manifest should default to true")
	}
	if cfg.Commands.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.Commands.TimeoutSeconds)
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hwscan.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	path := writeConfigFile(t, `
reports:
  default_name: asset_audit
commands:
  timeout_seconds: 5
logging:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Reports.DefaultName != "asset_audit" {
		t.Errorf("DefaultName = %q, want asset_audit", cfg.Reports.DefaultName)
	}
	if cfg.Commands.TimeoutSeconds != 5 {
		t.Errorf("TimeoutSeconds = %d, want 5", cfg.Commands.TimeoutSeconds)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	// Keys absent from the file keep defaults.
	if !cfg.GPU.PreferNVML {
		t.Error("PreferNVML should keep its default")
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for explicit missing config file")
	}
}

func TestLoad_InvalidYAMLFails(t *testing.T) {
	path := writeConfigFile(t, "reports: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	cfg.Commands.TimeoutSeconds = -1
	cfg.Reports.DefaultName = "sub/dir"

	errs := cfg.Validate()
	if len(errs) != 3 {
		t.Fatalf("Expected 3 validation errors, got %d: %v", len(errs), errs)
	}
	paths := map[string]bool{}
	for _, e := range errs {
		paths[e.Path] = true
	}
	for _, p := range []string{"logging.level", "commands.timeout_seconds", "reports.default_name"} {
		if !paths[p] {
			t.Errorf("Missing validation error for %s", p)
		}
	}
}

func TestLoad_InvalidConfigFails(t *testing.T) {
	path := writeConfigFile(t, "logging:\n  level: loud\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected validation error for unknown log level")
	}
}
