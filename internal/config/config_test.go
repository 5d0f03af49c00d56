package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Launch.Velocity != DefaultVelocity {
		t.Errorf("expected velocity %v, got %v", DefaultVelocity, cfg.Launch.Velocity)
	}
	if cfg.Launch.Angle != DefaultAngle {
		t.Errorf("expected angle %v, got %v", DefaultAngle, cfg.Launch.Angle)
	}
	if cfg.Display.Theme != DefaultTheme {
		t.Errorf("expected theme %s, got %s", DefaultTheme, cfg.Display.Theme)
	}
	if !cfg.Practice.Sound {
		t.Error("sound should default to on")
	}
	if cfg.DataDir == "" {
		t.Error("data dir should have a default")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Launch.Velocity = 52.5
	cfg.Launch.Angle = -15
	cfg.Launch.InitialHeight = 80
	cfg.Display.Theme = "chalkboard"
	cfg.Seed = 42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Launch.Velocity != 52.5 {
		t.Errorf("expected velocity 52.5, got %v", loaded.Launch.Velocity)
	}
	if loaded.Launch.Angle != -15 {
		t.Errorf("expected angle -15, got %v", loaded.Launch.Angle)
	}
	if loaded.Display.Theme != "chalkboard" {
		t.Errorf("expected theme chalkboard, got %s", loaded.Display.Theme)
	}
	if loaded.Seed != 42 {
		t.Errorf("expected seed 42, got %d", loaded.Seed)
	}
}

func TestLoadKeepsDefaultsForOmittedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := "launch:\n  velocity: 60\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Launch.Velocity != 60 {
		t.Errorf("expected velocity 60, got %v", cfg.Launch.Velocity)
	}
	if cfg.Display.Theme != DefaultTheme {
		t.Errorf("expected default theme, got %s", cfg.Display.Theme)
	}
	if !cfg.Practice.Sound {
		t.Error("expected sound default to survive a partial file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	l, ok := GetPreset("cliff")
	if !ok {
		t.Fatal("expected preset, got none")
	}
	if l.Angle != 0 || l.InitialHeight != 80 {
		t.Errorf("expected horizontal launch from 80 m, got angle %v height %v", l.Angle, l.InitialHeight)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected no preset for unknown name")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("expected sorted names, got %v", names)
		}
	}
}

func TestLaunchParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Launch.InitialHeight = 12

	params := cfg.LaunchParams()
	if params["velocity"] != DefaultVelocity {
		t.Errorf("expected velocity %v, got %v", DefaultVelocity, params["velocity"])
	}
	if params["initial_height"] != 12 {
		t.Errorf("expected initial_height 12, got %v", params["initial_height"])
	}
	if _, ok := params["final_height"]; !ok {
		t.Error("expected final_height key")
	}
}
