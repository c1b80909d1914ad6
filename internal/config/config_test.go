package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scenario != "catapult" {
		t.Errorf("expected scenario catapult, got %s", cfg.Scenario)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.Catapult.AngleDegrees != 45 || cfg.Catapult.Speed != 20 {
		t.Errorf("catapult defaults = %+v", cfg.Catapult)
	}
	if cfg.Pendulum.Length != 1 || cfg.Pendulum.Amplitude != 0.5 {
		t.Errorf("pendulum defaults = %+v", cfg.Pendulum)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Scenario = "pendulum"
	cfg.Pendulum.Length = 1.5
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Scenario != "pendulum" || loaded.Pendulum.Length != 1.5 {
		t.Errorf("loaded %+v", loaded)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("catapult:\n  angle_degrees: 30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Catapult.AngleDegrees != 30 {
		t.Errorf("angle = %g, want 30", cfg.Catapult.AngleDegrees)
	}
	if cfg.Catapult.Speed != 20 || cfg.Dt != DefaultDt {
		t.Errorf("unset fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("dt: [1, 2"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"unknown scenario", func(c *Config) { c.Scenario = "cannon" }, false},
		{"zero dt", func(c *Config) { c.Dt = 0 }, false},
		{"negative duration", func(c *Config) { c.Duration = -1 }, false},
		{"zero fps", func(c *Config) { c.FPS = 0 }, false},
		{"angle below slider", func(c *Config) { c.Catapult.AngleDegrees = 5 }, false},
		{"angle at slider max", func(c *Config) { c.Catapult.AngleDegrees = 80 }, true},
		{"speed above slider", func(c *Config) { c.Catapult.Speed = 41 }, false},
		{"spring ignores speed", func(c *Config) {
			c.Catapult.Speed = 0
			c.Catapult.Spring.Enabled = true
		}, true},
		{"pendulum too long", func(c *Config) {
			c.Scenario = "pendulum"
			c.Pendulum.Length = 2.5
		}, false},
		{"pendulum ignores catapult", func(c *Config) {
			c.Scenario = "pendulum"
			c.Catapult.AngleDegrees = 0
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLaunchSpeed(t *testing.T) {
	cfg := DefaultConfig()
	v, err := cfg.LaunchSpeed()
	if err != nil || v != 20 {
		t.Errorf("launch speed = %g, %v", v, err)
	}

	cfg.Catapult.Spring.Enabled = true
	v, err = cfg.LaunchSpeed()
	if err != nil {
		t.Fatalf("spring launch speed: %v", err)
	}
	if math.Abs(v-2) > 1e-9 {
		t.Errorf("spring launch speed = %g, want 2", v)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("pendulum", "long")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Pendulum.Length != 2.0 {
		t.Errorf("expected length 2.0, got %f", cfg.Pendulum.Length)
	}
	if cfg.Catapult.Speed != 20 {
		t.Error("sections of other scenarios should keep defaults")
	}

	cfg.Pendulum.Length = 0.1
	if Presets["pendulum"]["long"].Pendulum.Length != 2.0 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("pendulum", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "short")
	if cfg != nil {
		t.Error("expected nil for nonexistent scenario")
	}
}

func TestPresetsValidate(t *testing.T) {
	for scenario := range Presets {
		for _, name := range ListPresets(scenario) {
			if err := GetPreset(scenario, name).Validate(); err != nil {
				t.Errorf("%s/%s: %v", scenario, name, err)
			}
		}
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("catapult")
	if len(presets) == 0 {
		t.Fatal("expected presets for catapult")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent scenario")
	}
}

func TestLoadIntoOverlaysPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	if err := os.WriteFile(path, []byte("duration: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := GetPreset("pendulum", "long")
	if err := LoadInto(path, cfg); err != nil {
		t.Fatalf("load into: %v", err)
	}
	if cfg.Duration != 3 {
		t.Errorf("duration = %g, want 3 from the file", cfg.Duration)
	}
	if cfg.Pendulum.Length != 2.0 {
		t.Errorf("length = %g, want 2.0 from the preset", cfg.Pendulum.Length)
	}
}
