package optim

import (
	"context"
	"testing"

	"github.com/san-kum/quadsim/internal/flight"
	"github.com/san-kum/quadsim/internal/sim"
)

func baseParams() sim.Params {
	p := sim.DefaultParams()
	p.Start = flight.Position{Lat: 12.9716, Lon: 77.5946}
	p.Waypoints = []flight.Waypoint{{Lat: 12.9726, Lon: 77.5946, Alt: 10}}
	return p
}

func TestCombinations(t *testing.T) {
	g := NewGridSearch([]string{"kp", "kd"}, [][]float64{{1, 2, 3}, {0, 0.1}})
	combos := g.Combinations()
	if len(combos) != 6 {
		t.Fatalf("expected 6 combinations, got %d", len(combos))
	}
	if combos[0]["kp"] != 1 || combos[0]["kd"] != 0 {
		t.Errorf("unexpected first combination %v", combos[0])
	}
	if combos[5]["kp"] != 3 || combos[5]["kd"] != 0.1 {
		t.Errorf("unexpected last combination %v", combos[5])
	}
}

func TestApply(t *testing.T) {
	p, err := Apply(sim.DefaultParams(), "ki", 0.3)
	if err != nil || p.Gains.Ki != 0.3 {
		t.Errorf("Apply(ki) = %+v, %v", p.Gains, err)
	}
	if _, err := Apply(p, "mass", 1); err == nil {
		t.Error("expected error for unknown param")
	}
}

func TestSearch(t *testing.T) {
	g := NewGridSearch(
		[]string{"kp", "kd"},
		[][]float64{{0, 0.5, 2}, {0, 0.1}},
		sim.WithWorkers(3),
	)

	best, trials, err := g.Search(context.Background(), baseParams(), 40, "control_effort")
	if err != nil {
		t.Fatal(err)
	}
	if len(trials) != 6 {
		t.Fatalf("expected 6 trials, got %d", len(trials))
	}
	for i := 1; i < len(trials); i++ {
		if trials[i].Score < trials[i-1].Score {
			t.Fatalf("trials not sorted at %d", i)
		}
	}
	// With kp=kd=0 the control state never leaves zero.
	if best.Params["kp"] != 0 || best.Params["kd"] != 0 || best.Score != 0 {
		t.Errorf("expected the zero-gain trial to win, got %+v", best)
	}
}

func TestSearch_UnknownMetric(t *testing.T) {
	g := NewGridSearch([]string{"kp"}, [][]float64{{1}})
	if _, _, err := g.Search(context.Background(), baseParams(), 5, "nope"); err == nil {
		t.Error("expected error for unknown metric")
	}
}

func TestSearch_InvalidBase(t *testing.T) {
	p := baseParams()
	p.Dt = 0
	g := NewGridSearch([]string{"kp"}, [][]float64{{1}})
	if _, _, err := g.Search(context.Background(), p, 5, "tracking_error"); err == nil {
		t.Error("expected error for invalid base params")
	}
}
