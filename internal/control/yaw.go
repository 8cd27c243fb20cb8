package control

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/quadsim/internal/flight"
)

// YawLaw chooses the desired yaw for a tick.
type YawLaw interface {
	DesiredYaw(pos, target flight.Position, state flight.ControlState) float64
}

// ZeroYaw holds yaw at zero. It is the default law.
type ZeroYaw struct{}

func (ZeroYaw) DesiredYaw(pos, target flight.Position, state flight.ControlState) float64 {
	return 0
}

// HeadingYaw points the vehicle at its target: Gain * atan2(dLon, dLat),
// in radians. Zero error yields zero yaw.
type HeadingYaw struct {
	Gain float64
}

func (h HeadingYaw) DesiredYaw(pos, target flight.Position, state flight.ControlState) float64 {
	d := target.Sub(pos)
	if d.Lat == 0 && d.Lon == 0 {
		return 0
	}
	return h.Gain * math.Atan2(d.Lon, d.Lat)
}

var yawLaws = map[string]func(gain float64) YawLaw{
	"zero":    func(float64) YawLaw { return ZeroYaw{} },
	"heading": func(gain float64) YawLaw { return HeadingYaw{Gain: gain} },
}

// NewYawLaw looks up a law by name. An empty name selects "zero".
func NewYawLaw(name string, gain float64) (YawLaw, error) {
	if name == "" {
		name = "zero"
	}
	fn, ok := yawLaws[name]
	if !ok {
		return nil, fmt.Errorf("unknown yaw law: %s", name)
	}
	return fn(gain), nil
}

func ListYawLaws() []string {
	names := make([]string, 0, len(yawLaws))
	for name := range yawLaws {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
