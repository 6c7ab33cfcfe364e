package actlog_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/actlog"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "actlog.yaml", `
backend: writer
output: discard
severity: debug
min_severity: trace
omit_timestamp: true
`)
	cfg, err := actlog.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Backend != "writer" || cfg.Output != "discard" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Severity != "debug" || cfg.MinSeverity != "trace" {
		t.Fatalf("unexpected severities: %+v", cfg)
	}
	if !cfg.OmitTimestamp {
		t.Fatal("omit_timestamp not parsed")
	}
	if _, err := cfg.Formatter(); err != nil {
		t.Fatalf("Formatter: %v", err)
	}
}

func TestLoadConfigYAMLExtensionIsStrict(t *testing.T) {
	path := writeFile(t, "actlog.yaml", "backend = writer\nseverity = info\n")
	_, err := actlog.LoadConfig(path)
	if err == nil {
		t.Fatal("expected .yaml path with non-YAML content to fail")
	}
	var loadErr *actlog.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T: %v", err, err)
	}
	if loadErr.Path != path {
		t.Fatalf("LoadError names %q, want %q", loadErr.Path, path)
	}
	if loadErr.Unwrap() == nil {
		t.Fatal("LoadError must carry the original cause")
	}
}

func TestLoadConfigFlatFallback(t *testing.T) {
	path := writeFile(t, "actlog.conf", `[actlog]
backend = log
output = discard
severity = warn
omit_timestamp = true
`)
	cfg, err := actlog.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Backend != "log" || cfg.Severity != "warn" || !cfg.OmitTimestamp {
		t.Fatalf("unexpected config from flat format: %+v", cfg)
	}
}

func TestLoadConfigBothFormatsFail(t *testing.T) {
	path := writeFile(t, "actlog.conf", "no delimiter on this line\nbackend: [unterminated\n")
	_, err := actlog.LoadConfig(path)
	if err == nil {
		t.Fatal("expected load failure")
	}
	var loadErr *actlog.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error does not name the path: %v", err)
	}
}

func TestLoadConfigUnreadablePath(t *testing.T) {
	_, err := actlog.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var loadErr *actlog.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError for missing file, got %T: %v", err, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("cause not preserved: %v", err)
	}
}

func TestLoadConfigRejectsUnknownSeverity(t *testing.T) {
	path := writeFile(t, "actlog.yaml", "severity: verbose\n")
	if _, err := actlog.LoadConfig(path); err == nil {
		t.Fatal("expected unknown severity to fail validation")
	}
}

func TestConfigFromMap(t *testing.T) {
	cfg, err := actlog.ConfigFromMap(map[string]any{
		"backend":  "nop",
		"severity": "error",
	})
	if err != nil {
		t.Fatalf("ConfigFromMap: %v", err)
	}
	if cfg.Backend != "nop" || cfg.Severity != "error" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestConfigFromMapRejectsUnknownKeys(t *testing.T) {
	_, err := actlog.ConfigFromMap(map[string]any{"bakcend": "writer"})
	var settingsErr *actlog.SettingsError
	if !errors.As(err, &settingsErr) {
		t.Fatalf("expected *SettingsError, got %T: %v", err, err)
	}
	if settingsErr.Unwrap() == nil {
		t.Fatal("SettingsError must carry the cause")
	}
}

func TestConfigFromMapRejectsWrongTypes(t *testing.T) {
	_, err := actlog.ConfigFromMap(map[string]any{"severity": 42})
	var settingsErr *actlog.SettingsError
	if !errors.As(err, &settingsErr) {
		t.Fatalf("expected *SettingsError, got %T: %v", err, err)
	}
}

func TestConfigFromMapRejectsNil(t *testing.T) {
	var settingsErr *actlog.SettingsError
	if _, err := actlog.ConfigFromMap(nil); !errors.As(err, &settingsErr) {
		t.Fatalf("expected *SettingsError for nil settings, got %v", err)
	}
}

func TestConfigFormatterBackends(t *testing.T) {
	for _, kind := range []string{"", "writer", "log", "zerolog", "logrus", "nop"} {
		cfg := &actlog.Config{Backend: kind, Output: "discard"}
		f, err := cfg.Formatter()
		if err != nil {
			t.Fatalf("backend %q: %v", kind, err)
		}
		t0 := f.Start("probe")
		f.End("probe", t0)
	}
}

func TestConfigFormatterRejectsFileOutput(t *testing.T) {
	cfg := &actlog.Config{Output: "/var/log/actlog.log"}
	if _, err := cfg.Formatter(); err == nil {
		t.Fatal("expected file outputs to be rejected")
	}
}

func TestConfigFormatterAppliesSeparators(t *testing.T) {
	cfg, err := actlog.ConfigFromMap(map[string]any{
		"backend":             "nop",
		"pair_separator":      "|",
		"key_value_separator": ":",
		"omit_timestamp":      true,
	})
	if err != nil {
		t.Fatalf("ConfigFromMap: %v", err)
	}
	if _, err := cfg.Formatter(); err != nil {
		t.Fatalf("Formatter: %v", err)
	}
}
