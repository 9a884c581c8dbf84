package config

import (
	"os"
	"path/filepath"
	"testing"

	mdwerror "github.com/msto63/imstr/foundation/core/error"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	if cfg.Alloc.MaxTotalBytes != 0 {
		t.Errorf("Alloc.MaxTotalBytes = %d, want 0", cfg.Alloc.MaxTotalBytes)
	}
	if cfg.Format.BufferSize != 100 {
		t.Errorf("Format.BufferSize = %d, want 100", cfg.Format.BufferSize)
	}
	if cfg.Prompt.BufferSize != 100 {
		t.Errorf("Prompt.BufferSize = %d, want 100", cfg.Prompt.BufferSize)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if !cfg.UI.Color {
		t.Error("UI.Color should default to true")
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, want empty", cfg.Source)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "imstr.toml", `
[alloc]
max_total_bytes = 4096

[format]
buffer_size = 40

[log]
level = "debug"
format = "json"

[ui]
color = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Alloc.MaxTotalBytes != 4096 {
		t.Errorf("Alloc.MaxTotalBytes = %d", cfg.Alloc.MaxTotalBytes)
	}
	if cfg.Format.BufferSize != 40 {
		t.Errorf("Format.BufferSize = %d", cfg.Format.BufferSize)
	}
	if cfg.Prompt.BufferSize != 100 {
		t.Errorf("Prompt.BufferSize = %d, want default 100", cfg.Prompt.BufferSize)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.UI.Color {
		t.Error("UI.Color should be false")
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "imstr.yaml", `
prompt:
  buffer_size: 16
log:
  format: logfmt
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Prompt.BufferSize != 16 || cfg.Log.Format != "logfmt" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, "imstr.toml", "[alloc]\nmax_total_bytes = 4096\n")
	t.Setenv("IMSTR_ALLOC_MAX_TOTAL_BYTES", "128")
	t.Setenv("IMSTR_UI_COLOR", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Alloc.MaxTotalBytes != 128 {
		t.Errorf("env override ignored: %d", cfg.Alloc.MaxTotalBytes)
	}
	if cfg.UI.Color {
		t.Error("IMSTR_UI_COLOR=false ignored")
	}
}

func TestLoad_ConfigFileFromEnv(t *testing.T) {
	path := writeConfig(t, "custom.toml", "[format]\nbuffer_size = 12\n")
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Format.BufferSize != 12 {
		t.Errorf("Format.BufferSize = %d, want 12", cfg.Format.BufferSize)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative budget", "[alloc]\nmax_total_bytes = -1\n"},
		{"zero format buffer", "[format]\nbuffer_size = 0\n"},
		{"unknown level", "[log]\nlevel = \"loud\"\n"},
		{"unknown format", "[log]\nformat = \"xml\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "imstr.toml", tt.content))
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Load() error = %v, want NOT_FOUND", err)
	}
}
