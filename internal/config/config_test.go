package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.TimeScale < 1 {
		t.Error("time scale should be at least 1")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("water")
	if cfg == nil {
		t.Fatal("expected water preset")
	}
	if len(cfg.Scene.Particles) != 3 || len(cfg.Scene.Bonds) != 2 || len(cfg.Scene.Walls) != 4 {
		t.Errorf("unexpected water scene shape: %d particles, %d bonds, %d walls",
			len(cfg.Scene.Particles), len(cfg.Scene.Bonds), len(cfg.Scene.Walls))
	}

	// The copy must be independent of the stored preset.
	cfg.Scene.Particles[0].X = 999
	if GetPreset("water").Scene.Particles[0].X == 999 {
		t.Error("preset copy shares storage with the original")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets()) == 0 {
		t.Error("expected at least one preset")
	}
}

func TestToScene(t *testing.T) {
	s, err := GetPreset("water").ToScene()
	if err != nil {
		t.Fatalf("water preset should build: %v", err)
	}
	if len(s.Particles) != 3 || len(s.Bonds) != 2 || len(s.Walls) != 4 {
		t.Error("scene shape mismatch")
	}
	if !s.Bonds.Linked(0, 1) || !s.Bonds.Linked(0, 2) {
		t.Error("expected bonds (0,1) and (0,2)")
	}
}

func TestToSceneRejectsBadInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scene.Particles = []ParticleConfig{{Element: "mithril"}}
	if _, err := cfg.ToScene(); err == nil {
		t.Error("unknown element must be rejected")
	}

	cfg = DefaultConfig()
	cfg.Scene.Particles = []ParticleConfig{{Element: "hydrogen"}}
	cfg.Scene.Bonds = [][2]int{{0, 3}}
	if _, err := cfg.ToScene(); err == nil {
		t.Error("out-of-range bond must be rejected")
	}

	cfg = DefaultConfig()
	cfg.Scene.Particles = []ParticleConfig{{Element: "hydrogen"}}
	cfg.Scene.Bonds = [][2]int{{0, 0}}
	if _, err := cfg.ToScene(); err == nil {
		t.Error("self-bond must be rejected")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")

	cfg := GetPreset("water")
	cfg.Dt = 0.002
	cfg.TimeScale = 3
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Dt != 0.002 || loaded.TimeScale != 3 {
		t.Errorf("run settings lost: dt=%f timescale=%d", loaded.Dt, loaded.TimeScale)
	}
	if len(loaded.Scene.Particles) != 3 || loaded.Scene.Particles[0].Element != "oxygen" {
		t.Error("scene lost in round trip")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(os.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
