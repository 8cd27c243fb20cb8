// Package integrators advances simulation state by one fixed step.
//
//   - [Euler]: rate integration of the four-axis control state
//   - [Approach]: exponential approach of the position toward its target
package integrators

import "github.com/san-kum/quadsim/internal/flight"

// DefaultApproachGain is the fraction of the remaining error closed each tick.
const DefaultApproachGain = 1e-5

// Approach moves a position a fixed fraction of the way to its target:
// p' = p + Gain*(target - p). There is no momentum, drag or wind.
type Approach struct {
	Gain float64
}

func NewApproach() *Approach {
	return &Approach{Gain: DefaultApproachGain}
}

func (a *Approach) Advance(pos, target flight.Position) flight.Position {
	return pos.Add(target.Sub(pos).Scale(a.Gain))
}
