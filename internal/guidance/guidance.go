// Package guidance selects the position target for each tick from the
// mission waypoints, the return-to-launch flag and the current position.
package guidance

import "github.com/san-kum/quadsim/internal/flight"

// ProximityThreshold is the capture radius in raw coordinate units,
// roughly 5 m at the reference latitude.
const ProximityThreshold = 5e-5

// Mission is the per-run guidance state. Waypoints are consumed front to
// back; Index only advances when RTL is off.
type Mission struct {
	Waypoints []flight.Waypoint
	Index     int
	RTL       bool
	Launch    flight.Position
}

// NewMission copies the waypoints so later edits by the caller cannot
// change an active run.
func NewMission(launch flight.Position, waypoints []flight.Waypoint, rtl bool) Mission {
	wps := make([]flight.Waypoint, len(waypoints))
	copy(wps, waypoints)
	return Mission{
		Waypoints: wps,
		RTL:       rtl,
		Launch:    launch,
	}
}

// Complete reports whether every waypoint has been captured.
func (m Mission) Complete() bool {
	return m.Index >= len(m.Waypoints)
}

// ComputeTarget returns this tick's target and the mission state for the
// next tick. The current tick always uses the pre-advance target.
func ComputeTarget(pos flight.Position, m Mission) (flight.Position, Mission) {
	if m.RTL {
		return m.Launch, m
	}
	if m.Index < 0 || m.Index >= len(m.Waypoints) {
		// station-hold
		return pos, m
	}

	target := m.Waypoints[m.Index]
	if target.Sub(pos).Norm() < ProximityThreshold {
		m.Index++
	}
	return target, m
}
