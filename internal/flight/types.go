package flight

import "math"

// Position is a point in (lat, lon, alt). Lat/lon are degrees, alt is
// meters-equivalent.
type Position struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lon float64 `yaml:"lon" json:"lon"`
	Alt float64 `yaml:"alt" json:"alt"`
}

// Waypoint is a mission target. It is immutable once submitted.
type Waypoint = Position

func (p Position) Add(o Position) Position {
	return Position{p.Lat + o.Lat, p.Lon + o.Lon, p.Alt + o.Alt}
}

func (p Position) Sub(o Position) Position {
	return Position{p.Lat - o.Lat, p.Lon - o.Lon, p.Alt - o.Alt}
}

func (p Position) Scale(f float64) Position {
	return Position{p.Lat * f, p.Lon * f, p.Alt * f}
}

func (p Position) Norm() float64 {
	return math.Sqrt(p.Lat*p.Lat + p.Lon*p.Lon + p.Alt*p.Alt)
}

// Distance is the Euclidean distance in raw coordinate units.
func (p Position) Distance(o Position) float64 {
	return p.Sub(o).Norm()
}

func (p Position) IsFinite() bool {
	return isFinite(p.Lat) && isFinite(p.Lon) && isFinite(p.Alt)
}

func (p Position) Array() [3]float64 {
	return [3]float64{p.Lat, p.Lon, p.Alt}
}

// Axis indexes the four control axes in their fixed output order.
type Axis int

const (
	Roll Axis = iota
	Pitch
	Yaw
	Thrust
	NumAxes
)

func (a Axis) String() string {
	switch a {
	case Roll:
		return "roll"
	case Pitch:
		return "pitch"
	case Yaw:
		return "yaw"
	case Thrust:
		return "thrust"
	}
	return "unknown"
}

// Axes is a 4-vector over roll, pitch, yaw, thrust.
type Axes [NumAxes]float64

func (a Axes) Add(o Axes) Axes {
	var r Axes
	for i := range a {
		r[i] = a[i] + o[i]
	}
	return r
}

func (a Axes) Sub(o Axes) Axes {
	var r Axes
	for i := range a {
		r[i] = a[i] - o[i]
	}
	return r
}

func (a Axes) Scale(f float64) Axes {
	var r Axes
	for i := range a {
		r[i] = a[i] * f
	}
	return r
}

func (a Axes) IsFinite() bool {
	for _, v := range a {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// ControlState is the vehicle's internal attitude/thrust state. Roll,
// pitch and yaw are control-loop magnitudes, not physical angles, and
// none of the fields are clamped.
type ControlState struct {
	Roll   float64 `json:"roll"`
	Pitch  float64 `json:"pitch"`
	Yaw    float64 `json:"yaw"`
	Thrust float64 `json:"thrust"`
}

func (c ControlState) Axes() Axes {
	return Axes{c.Roll, c.Pitch, c.Yaw, c.Thrust}
}

func ControlStateFrom(a Axes) ControlState {
	return ControlState{Roll: a[Roll], Pitch: a[Pitch], Yaw: a[Yaw], Thrust: a[Thrust]}
}

func (c ControlState) Array() [4]float64 {
	return [4]float64(c.Axes())
}

// Gains are applied identically to all four axes. IntegralLimit > 0
// clamps each integral term to ±IntegralLimit; zero leaves the integrator
// unbounded.
type Gains struct {
	Kp            float64 `yaml:"kp" json:"kp"`
	Ki            float64 `yaml:"ki" json:"ki"`
	Kd            float64 `yaml:"kd" json:"kd"`
	IntegralLimit float64 `yaml:"integral_limit" json:"integral_limit"`
}

func (g Gains) IsFinite() bool {
	return isFinite(g.Kp) && isFinite(g.Ki) && isFinite(g.Kd) && isFinite(g.IntegralLimit)
}

// MotorCommands holds PWM values for motors m1..m4.
type MotorCommands [4]int32

const (
	PWMMin = 1000
	PWMMax = 2000
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
