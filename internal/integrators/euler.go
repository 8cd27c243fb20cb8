package integrators

import "github.com/san-kum/quadsim/internal/flight"

// Euler advances the control state by a rate over one step:
// x' = x + rate*dt.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(x flight.ControlState, rate flight.Axes, dt float64) flight.ControlState {
	return flight.ControlStateFrom(x.Axes().Add(rate.Scale(dt)))
}
