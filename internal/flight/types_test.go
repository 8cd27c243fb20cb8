package flight

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestPosition_IsFinite(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"zero", Position{}, true},
		{"normal", Position{12.9716, 77.5946, 10}, true},
		{"NaN lat", Position{math.NaN(), 0, 0}, false},
		{"+Inf lon", Position{0, math.Inf(1), 0}, false},
		{"-Inf alt", Position{0, 0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsFinite(); got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPosition_Arithmetic(t *testing.T) {
	a := Position{1, 2, 3}
	b := Position{4, 6, 3}

	if got := b.Sub(a); got != (Position{3, 4, 0}) {
		t.Errorf("Sub failed: got %v", got)
	}
	if got := a.Add(b); got != (Position{5, 8, 6}) {
		t.Errorf("Add failed: got %v", got)
	}
	if got := a.Scale(2); got != (Position{2, 4, 6}) {
		t.Errorf("Scale failed: got %v", got)
	}
	if got := a.Distance(b); math.Abs(got-5) > 1e-12 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestAxes_RoundTrip(t *testing.T) {
	c := ControlState{Roll: 1, Pitch: 2, Yaw: 3, Thrust: 0.5}
	if got := ControlStateFrom(c.Axes()); got != c {
		t.Errorf("ControlStateFrom(Axes()) = %v, want %v", got, c)
	}
	if c.Axes()[Thrust] != 0.5 {
		t.Errorf("thrust axis = %v, want 0.5", c.Axes()[Thrust])
	}
}

func TestFrame_MarshalJSON(t *testing.T) {
	f := Frame{
		Time:          0.1,
		Position:      Position{1, 2, 3},
		ControlState:  ControlState{0.1, 0.2, 0, 0.5},
		MotorCommands: MotorCommands{1500, 1501, 1502, 1503},
	}

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"time":0.1,"position":[1,2,3],"control_state":[0.1,0.2,0,0.5],"motor_commands":[1500,1501,1502,1503]}`
	if string(data) != want {
		t.Errorf("got %s\nwant %s", data, want)
	}

	var back Frame
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back != f {
		t.Errorf("round trip mismatch: got %+v", back)
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Field: "dt", Reason: "must be positive"}
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Error("ConfigError should unwrap to ErrInvalidConfiguration")
	}
	want := "flight: invalid configuration: dt: must be positive"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
