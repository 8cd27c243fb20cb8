package metrics

import (
	"math"

	"github.com/san-kum/quadsim/internal/flight"
)

// ControlEffort is the mean over frames of the weighted absolute control
// state. Weights are in roll, pitch, yaw, thrust order.
type ControlEffort struct {
	weights flight.Axes
	total   float64
	frames  int
}

// NewControlEffort weights every axis equally.
func NewControlEffort() *ControlEffort {
	return NewWeightedControlEffort(flight.Axes{1, 1, 1, 1})
}

func NewWeightedControlEffort(w flight.Axes) *ControlEffort {
	return &ControlEffort{weights: w}
}

func (c *ControlEffort) Name() string { return "control_effort" }

func (c *ControlEffort) Observe(f flight.Frame, _ flight.Position) {
	u := f.ControlState.Array()
	for i := range u {
		c.total += c.weights[i] * math.Abs(u[i])
	}
	c.frames++
}

func (c *ControlEffort) Value() float64 {
	if c.frames == 0 {
		return 0
	}
	return c.total / float64(c.frames)
}

func (c *ControlEffort) Reset() {
	c.total, c.frames = 0, 0
}
