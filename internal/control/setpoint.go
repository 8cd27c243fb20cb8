package control

import (
	"math"

	"github.com/san-kum/quadsim/internal/flight"
)

const (
	// SetpointScale converts position error (degrees) into control-state
	// units.
	SetpointScale = 100.0

	// HoverThrust is the thrust setpoint at zero altitude error.
	HoverThrust = 0.5
)

// Desired maps a position error (target - position) to the setpoint the
// PID steers toward. Roll follows the longitude error, pitch the latitude
// error; thrust is clamped to [0, 1].
func Desired(posErr flight.Position, losGain, yaw float64) flight.Axes {
	return flight.Axes{
		flight.Roll:   losGain * posErr.Lon * SetpointScale,
		flight.Pitch:  losGain * posErr.Lat * SetpointScale,
		flight.Yaw:    yaw,
		flight.Thrust: math.Max(0, math.Min(1, HoverThrust+posErr.Alt)),
	}
}
