package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/quadsim/internal/flight"
	"github.com/san-kum/quadsim/internal/sim"
)

func TestControlEffort(t *testing.T) {
	m := NewControlEffort()
	if m.Value() != 0 {
		t.Errorf("expected 0 before samples")
	}

	m.Observe(flight.Frame{ControlState: flight.ControlState{Roll: 1, Pitch: -1}}, flight.Position{})
	m.Observe(flight.Frame{ControlState: flight.ControlState{Thrust: 2}}, flight.Position{})

	if got := m.Value(); got != 2 {
		t.Errorf("expected 2, got %v", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestControlEffort_Weighted(t *testing.T) {
	m := NewWeightedControlEffort(flight.Axes{1, 1, 1, 0})
	m.Observe(flight.Frame{ControlState: flight.ControlState{Yaw: -0.5, Thrust: 100}}, flight.Position{})

	if got := m.Value(); got != 0.5 {
		t.Errorf("thrust should carry no weight, got %v", got)
	}
}

func TestTrackingError(t *testing.T) {
	m := NewTrackingError()
	target := flight.Position{Lat: 3, Lon: 4}

	m.Observe(flight.Frame{}, target)
	m.Observe(flight.Frame{Position: target}, target)

	if got := m.Value(); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("expected 2.5, got %v", got)
	}
}

func TestSaturation(t *testing.T) {
	m := NewSaturation()
	m.Observe(flight.Frame{MotorCommands: flight.MotorCommands{1500, 1500, 1500, 1500}}, flight.Position{})
	m.Observe(flight.Frame{MotorCommands: flight.MotorCommands{2000, 1500, 1500, 1000}}, flight.Position{})

	if got := m.Value(); got != 0.5 {
		t.Errorf("expected 0.5, got %v", got)
	}
}

func TestPeakRate(t *testing.T) {
	m := NewPeakRate()
	m.Observe(flight.Frame{Time: 0.1}, flight.Position{})
	m.Observe(flight.Frame{Time: 0.2, ControlState: flight.ControlState{Yaw: -0.5}}, flight.Position{})

	if got := m.Value(); math.Abs(got-5) > 1e-9 {
		t.Errorf("expected 5, got %v", got)
	}
}

func TestDefaults_WithSimulator(t *testing.T) {
	s := sim.New(sim.WithMetric(Defaults()...))

	p := sim.DefaultParams()
	p.Start = flight.Position{Lat: 12.9716, Lon: 77.5946}
	p.Waypoints = []flight.Waypoint{{Lat: 12.9726, Lon: 77.5956, Alt: 30}}
	if _, err := s.Start(p); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Run(context.Background(), 50); err != nil {
		t.Fatal(err)
	}

	values := s.Metrics()
	for _, name := range []string{"tracking_error", "control_effort", "saturation", "peak_rate"} {
		v, ok := values[name]
		if !ok {
			t.Errorf("missing metric %s", name)
			continue
		}
		if math.IsNaN(v) || v < 0 {
			t.Errorf("%s: unexpected value %v", name, v)
		}
	}
	if values["tracking_error"] == 0 {
		t.Error("expected non-zero tracking error while en route")
	}
}
