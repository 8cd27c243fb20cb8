package metrics

import (
	"math"

	"github.com/san-kum/quadsim/internal/flight"
)

// TrackingError is the mean distance between the position and the
// guidance target, in raw coordinate units.
type TrackingError struct {
	name    string
	sum     float64
	samples int
}

func NewTrackingError() *TrackingError {
	return &TrackingError{name: "tracking_error"}
}

func (e *TrackingError) Name() string { return e.name }

func (e *TrackingError) Observe(f flight.Frame, target flight.Position) {
	e.sum += f.Position.Distance(target)
	e.samples++
}

func (e *TrackingError) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.sum / float64(e.samples)
}

func (e *TrackingError) Reset() {
	e.sum = 0
	e.samples = 0
}

// PeakRate is the largest per-tick change of any control axis, divided
// by the frame spacing.
type PeakRate struct {
	name  string
	prev  flight.Frame
	seen  bool
	value float64
}

func NewPeakRate() *PeakRate {
	return &PeakRate{name: "peak_rate"}
}

func (p *PeakRate) Name() string { return p.name }

func (p *PeakRate) Observe(f flight.Frame, target flight.Position) {
	if p.seen {
		dt := f.Time - p.prev.Time
		if dt > 0 {
			d := f.ControlState.Axes().Sub(p.prev.ControlState.Axes())
			for _, v := range d {
				p.value = math.Max(p.value, math.Abs(v)/dt)
			}
		}
	}
	p.prev = f
	p.seen = true
}

func (p *PeakRate) Value() float64 { return p.value }

func (p *PeakRate) Reset() {
	p.prev = flight.Frame{}
	p.seen = false
	p.value = 0
}
