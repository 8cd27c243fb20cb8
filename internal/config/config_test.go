package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/quadsim/internal/control"
	"github.com/san-kum/quadsim/internal/flight"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dt != 0.1 {
		t.Errorf("expected dt 0.1, got %f", cfg.Dt)
	}
	if cfg.Start != DefaultLaunch {
		t.Errorf("expected default launch, got %+v", cfg.Start)
	}
	if cfg.Controller.Kp != 1 || cfg.Controller.Kd != 0.1 {
		t.Errorf("unexpected gains %+v", cfg.Controller)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mission.yaml")
	data := []byte(`
start: {lat: 10, lon: 20, alt: 5}
waypoints:
  - {lat: 10.001, lon: 20, alt: 15}
  - {lat: 10.001, lon: 20.001, alt: 15}
rtl: true
controller:
  kp: 2
  integral_limit: 3
yaw:
  law: heading
  gain: 0.5
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Start != (flight.Position{Lat: 10, Lon: 20, Alt: 5}) {
		t.Errorf("unexpected start %+v", cfg.Start)
	}
	if len(cfg.Waypoints) != 2 || !cfg.RTL {
		t.Errorf("unexpected mission %+v rtl=%v", cfg.Waypoints, cfg.RTL)
	}
	if cfg.Controller.Kp != 2 || cfg.Controller.IntegralLimit != 3 {
		t.Errorf("unexpected gains %+v", cfg.Controller)
	}
	if cfg.Dt != DefaultDt || cfg.LOSGain != DefaultLOSGain {
		t.Errorf("unset fields should keep defaults, got dt=%v los=%v", cfg.Dt, cfg.LOSGain)
	}

	p, err := cfg.Params()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.YawLaw.(control.HeadingYaw); !ok {
		t.Errorf("expected heading yaw law, got %T", p.YawLaw)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("dt: [1, 2"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("square")

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Waypoints) != len(cfg.Waypoints) || got.Waypoints[2] != cfg.Waypoints[2] {
		t.Errorf("waypoints did not survive save/load: %+v", got.Waypoints)
	}
}

func TestParams_UnknownYawLaw(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Yaw.Law = "spiral"

	_, err := cfg.Params()
	if !errors.Is(err, flight.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("hover")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Waypoints) != 1 || cfg.Waypoints[0].Alt != 10 {
		t.Errorf("unexpected hover waypoints %+v", cfg.Waypoints)
	}

	cfg.Waypoints[0].Alt = 999
	if Presets["hover"].Waypoints[0].Alt == 999 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		p, err := GetPreset(name).Params()
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if err := p.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}
