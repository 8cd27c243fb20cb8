package metrics

import "github.com/san-kum/quadsim/internal/sim"

// Defaults returns a fresh instance of every built-in metric.
func Defaults() []sim.Metric {
	return []sim.Metric{
		NewTrackingError(),
		NewControlEffort(),
		NewSaturation(),
		NewPeakRate(),
	}
}
