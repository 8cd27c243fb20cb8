package control

import (
	"math"
	"testing"

	"github.com/san-kum/quadsim/internal/flight"
)

func TestPID_ZeroGains(t *testing.T) {
	pid := NewPID(flight.Gains{})
	u := pid.Compute(flight.ControlState{Roll: 3, Thrust: 0.2}, flight.Axes{10, -10, 5, 1}, 0.1)
	if u != (flight.Axes{}) {
		t.Errorf("zero gains should produce zero control, got %v", u)
	}
}

func TestPID_FirstTick(t *testing.T) {
	pid := NewPID(flight.Gains{Kp: 2, Ki: 1, Kd: 0.5})
	dt := 0.1
	desired := flight.Axes{1, 0, 0, 0.5}

	u := pid.Compute(flight.ControlState{}, desired, dt)

	// e = desired, integral = e*dt, derivative = e/dt
	for i := range desired {
		e := desired[i]
		want := 2*e + 1*(e*dt) + 0.5*(e/dt)
		if math.Abs(u[i]-want) > 1e-12 {
			t.Errorf("axis %v: got %v, want %v", flight.Axis(i), u[i], want)
		}
	}

	st := pid.State()
	if st.PrevError != desired {
		t.Errorf("prev error = %v, want %v", st.PrevError, desired)
	}
}

func TestPID_IntegralWindsUpByDefault(t *testing.T) {
	pid := NewPID(flight.Gains{Ki: 1})
	desired := flight.Axes{1, 1, 1, 1}
	for i := 0; i < 1000; i++ {
		pid.Compute(flight.ControlState{}, desired, 0.1)
	}
	if got := pid.State().Integral[flight.Roll]; math.Abs(got-100) > 1e-6 {
		t.Errorf("integral = %v, want 100", got)
	}
}

func TestPID_IntegralLimit(t *testing.T) {
	pid := NewPID(flight.Gains{Ki: 1, IntegralLimit: 2})
	for i := 0; i < 1000; i++ {
		pid.Compute(flight.ControlState{}, flight.Axes{1, -1, 0, 1}, 0.1)
	}
	st := pid.State()
	if st.Integral[flight.Roll] != 2 {
		t.Errorf("roll integral = %v, want clamp at 2", st.Integral[flight.Roll])
	}
	if st.Integral[flight.Pitch] != -2 {
		t.Errorf("pitch integral = %v, want clamp at -2", st.Integral[flight.Pitch])
	}
	if st.Integral[flight.Yaw] != 0 {
		t.Errorf("yaw integral = %v, want 0", st.Integral[flight.Yaw])
	}
}

func TestPID_Reset(t *testing.T) {
	pid := NewPID(flight.Gains{Kp: 1, Ki: 1, Kd: 1})
	pid.Compute(flight.ControlState{}, flight.Axes{1, 2, 3, 4}, 0.1)
	pid.Reset()
	if pid.State() != (PIDState{}) {
		t.Errorf("state not cleared: %+v", pid.State())
	}
}

func TestPID_SetParam(t *testing.T) {
	pid := NewPID(flight.Gains{Kp: 1})

	if err := pid.SetParam("Kd", 0.3); err != nil {
		t.Fatalf("SetParam failed: %v", err)
	}
	if pid.GetParams()["Kd"] != 0.3 {
		t.Errorf("Kd not updated: %v", pid.GetParams())
	}
	if err := pid.SetParam("Kx", 1); err == nil {
		t.Error("expected error for unknown param")
	}
	if err := pid.SetParam("Kp", math.NaN()); err == nil {
		t.Error("expected error for NaN gain")
	}
}
