package analysis

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/quadsim/internal/flight"
	"github.com/san-kum/quadsim/internal/sim"
)

func TestPowerSpectrum_Impulse(t *testing.T) {
	out := PowerSpectrum([]float64{1, 0, 0, 0})
	if len(out) != 2 {
		t.Fatalf("expected 2 bins, got %d", len(out))
	}
	for i, v := range out {
		if math.Abs(v-1) > 1e-12 {
			t.Errorf("bin %d: expected 1, got %v", i, v)
		}
	}
}

func TestAxisSpectrum_FindsSine(t *testing.T) {
	const dt, hz = 0.1, 1.25
	frames := make([]flight.Frame, 64)
	for i := range frames {
		ts := float64(i+1) * dt
		frames[i] = flight.Frame{
			Time:         ts,
			ControlState: flight.ControlState{Roll: 3 + math.Sin(2*math.Pi*hz*ts)},
		}
	}

	s, err := AxisSpectrum(frames, flight.Roll)
	if err != nil {
		t.Fatal(err)
	}
	freq, _, ok := s.Dominant()
	if !ok {
		t.Fatal("expected a dominant frequency")
	}
	if math.Abs(freq-hz) > 1/(64*dt) {
		t.Errorf("expected ~%v Hz, got %v", hz, freq)
	}
}

func TestAxisSpectrum_Flat(t *testing.T) {
	frames := []flight.Frame{{Time: 0.1}, {Time: 0.2}, {Time: 0.3}}
	s, err := AxisSpectrum(frames, flight.Thrust)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, ok := s.Dominant(); ok {
		t.Error("constant series should have no dominant frequency")
	}
}

func TestAxisSpectrum_TooFew(t *testing.T) {
	if _, err := AxisSpectrum([]flight.Frame{{}}, flight.Roll); !errors.Is(err, ErrTooFewSamples) {
		t.Errorf("expected ErrTooFewSamples, got %v", err)
	}
}

func TestGroundTrack(t *testing.T) {
	s := sim.New()
	p := sim.DefaultParams()
	p.Start = flight.Position{Lat: 12.9716, Lon: 77.5946}
	p.ApproachGain = 0.1
	p.Waypoints = []flight.Waypoint{{Lat: 12.9726, Lon: 77.5956}}
	if _, err := s.Start(p); err != nil {
		t.Fatal(err)
	}
	frames, err := s.Run(context.Background(), 30)
	if err != nil {
		t.Fatal(err)
	}

	art := GroundTrack(frames).ASCII(40, 12, Point{X: p.Waypoints[0].Lon, Y: p.Waypoints[0].Lat})
	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(lines))
	}
	if !strings.ContainsRune(art, '•') || !strings.ContainsRune(art, '+') {
		t.Error("expected track points and a waypoint mark")
	}
}

func TestPortrait_Empty(t *testing.T) {
	if NewPortrait(nil, nil, nil).ASCII(10, 10) != "" {
		t.Error("expected empty render")
	}
}
