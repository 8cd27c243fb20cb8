package metrics

import (
	"github.com/san-kum/quadsim/internal/flight"
	"github.com/san-kum/quadsim/internal/mixer"
)

// Saturation is the fraction of frames in which at least one motor sat
// on a PWM limit.
type Saturation struct {
	name      string
	saturated int
	samples   int
}

func NewSaturation() *Saturation {
	return &Saturation{
		name: "saturation",
	}
}

func (s *Saturation) Name() string {
	return s.name
}

func (s *Saturation) Observe(f flight.Frame, target flight.Position) {
	s.samples++
	for _, sat := range mixer.Saturated(f.MotorCommands) {
		if sat {
			s.saturated++
			break
		}
	}
}

func (s *Saturation) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.saturated) / float64(s.samples)
}

func (s *Saturation) Reset() {
	s.saturated = 0
	s.samples = 0
}
