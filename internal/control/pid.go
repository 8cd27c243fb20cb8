package control

import (
	"fmt"
	"math"

	"github.com/san-kum/quadsim/internal/flight"
)

// PIDState is the per-axis memory carried between ticks.
type PIDState struct {
	Integral  flight.Axes
	PrevError flight.Axes
}

type PID struct {
	Gains flight.Gains
	state PIDState
}

func NewPID(g flight.Gains) *PID {
	return &PID{Gains: g}
}

// Compute returns the control rate for one tick:
//
//	e = desired - state
//	integral += e*dt
//	u = kp*e + ki*integral + kd*(e - prev)/dt
//
// dt must be positive.
func (p *PID) Compute(state flight.ControlState, desired flight.Axes, dt float64) flight.Axes {
	err := desired.Sub(state.Axes())

	p.state.Integral = p.state.Integral.Add(err.Scale(dt))
	if lim := p.Gains.IntegralLimit; lim > 0 {
		for i, v := range p.state.Integral {
			p.state.Integral[i] = math.Max(-lim, math.Min(lim, v))
		}
	}

	var derivative flight.Axes
	for i := range err {
		derivative[i] = (err[i] - p.state.PrevError[i]) / dt
	}
	p.state.PrevError = err

	return err.Scale(p.Gains.Kp).
		Add(p.state.Integral.Scale(p.Gains.Ki)).
		Add(derivative.Scale(p.Gains.Kd))
}

// State returns a copy of the integral and previous-error terms.
func (p *PID) State() PIDState {
	return p.state
}

// Reset clears integral and derivative state
func (p *PID) Reset() {
	p.state = PIDState{}
}

// GetParams returns tunable parameters for live adjustment
func (p *PID) GetParams() map[string]float64 {
	return map[string]float64{
		"Kp": p.Gains.Kp,
		"Ki": p.Gains.Ki,
		"Kd": p.Gains.Kd,
	}
}

// SetParam adjusts a PID parameter
func (p *PID) SetParam(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("param %s: non-finite value", name)
	}
	switch name {
	case "Kp":
		p.Gains.Kp = value
	case "Ki":
		p.Gains.Ki = value
	case "Kd":
		p.Gains.Kd = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
