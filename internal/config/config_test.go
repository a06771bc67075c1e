package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/bishop/internal/bishop"
	"github.com/san-kum/bishop/internal/input"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 17 || cfg.Height != 9 {
		t.Errorf("expected 17x9, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Chars != bishop.DefaultChars {
		t.Errorf("unexpected default chars %q", cfg.Chars)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
	if cfg.InputType() != input.Bin || cfg.Algorithm() != input.SHA256 {
		t.Errorf("unexpected selectors %s/%s", cfg.InputType(), cfg.Algorithm())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		err    error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, bishop.ErrGeometry},
		{"too tall", func(c *Config) { c.Height = 501 }, bishop.ErrGeometry},
		{"short palette", func(c *Config) { c.Chars = "abc" }, bishop.ErrPalette},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Input = "base64"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown input type")
	}
	cfg = DefaultConfig()
	cfg.Hash = "md5"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown hash")
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bishop.yaml")

	cfg := DefaultConfig()
	cfg.Width = 21
	cfg.Top = "RSA 4096"
	cfg.Input = "hex"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bishop.yaml")
	if err := os.WriteFile(path, []byte("width: 25\ntop: hello\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Width != 25 || cfg.Top != "hello" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Height != 9 || cfg.Chars != bishop.DefaultChars {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("width: [1, 2"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("wide")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}

	cfg := DefaultConfig()
	p.Apply(cfg)
	if cfg.Width != 33 || cfg.Height != 17 {
		t.Errorf("preset geometry not applied: %dx%d", cfg.Width, cfg.Height)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := DefaultConfig()
		GetPreset(name).Apply(cfg)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestListPresetsSorted(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}
