// Package mixer maps the four-axis control state onto motor PWM commands
// for an X-configuration quadrotor.
package mixer

import (
	"math"

	"github.com/san-kum/quadsim/internal/flight"
)

const (
	BasePWM     = 1500.0
	ThrustScale = 500.0
	RollScale   = 100.0
	PitchScale  = 100.0
	YawScale    = 50.0
)

// Mix returns [m1, m2, m3, m4]. Each value is clamped to
// [flight.PWMMin, flight.PWMMax] and then truncated.
//
//	m1 = base + roll + pitch - yaw
//	m2 = base - roll + pitch + yaw
//	m3 = base - roll - pitch - yaw
//	m4 = base + roll - pitch + yaw
func Mix(c flight.ControlState) flight.MotorCommands {
	base := BasePWM + c.Thrust*ThrustScale
	roll := c.Roll * RollScale
	pitch := c.Pitch * PitchScale
	yaw := c.Yaw * YawScale

	return flight.MotorCommands{
		clampPWM(base + roll + pitch - yaw),
		clampPWM(base - roll + pitch + yaw),
		clampPWM(base - roll - pitch - yaw),
		clampPWM(base + roll - pitch + yaw),
	}
}

func clampPWM(v float64) int32 {
	if math.IsNaN(v) {
		return flight.PWMMin
	}
	v = math.Max(flight.PWMMin, math.Min(flight.PWMMax, v))
	return int32(math.Trunc(v))
}

// Saturated reports which motors sit on a PWM limit.
func Saturated(m flight.MotorCommands) [4]bool {
	var s [4]bool
	for i, v := range m {
		s[i] = v <= flight.PWMMin || v >= flight.PWMMax
	}
	return s
}
