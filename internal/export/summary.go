package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/quadsim/internal/flight"
	"github.com/san-kum/quadsim/internal/sim"
)

// Summary is the run-level record written next to frame exports.
type Summary struct {
	RunID         string             `json:"run_id"`
	Dt            float64            `json:"dt"`
	Frames        int                `json:"frames"`
	Gains         flight.Gains       `json:"gains"`
	LOSGain       float64            `json:"los_gain"`
	RTL           bool               `json:"rtl"`
	Waypoints     []flight.Waypoint  `json:"waypoints"`
	WaypointIndex int                `json:"waypoint_index"`
	Final         *flight.Frame      `json:"final,omitempty"`
	Metrics       map[string]float64 `json:"metrics"`
}

func NewSummary(r *sim.Result) Summary {
	p := r.Handle.Params
	s := Summary{
		RunID:         r.Handle.ID.String(),
		Dt:            p.Dt,
		Frames:        len(r.Frames),
		Gains:         p.Gains,
		LOSGain:       p.LOSGain,
		RTL:           p.RTL,
		Waypoints:     p.Waypoints,
		WaypointIndex: r.Mission.Index,
		Metrics:       r.Metrics,
	}
	if n := len(r.Frames); n > 0 {
		last := r.Frames[n-1]
		s.Final = &last
	}
	return s
}

func WriteSummary(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
