package sim

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/san-kum/quadsim/internal/control"
	"github.com/san-kum/quadsim/internal/flight"
	"github.com/san-kum/quadsim/internal/guidance"
)

const (
	DefaultDt      = 0.1
	DefaultLOSGain = 0.5
)

type Phase int

const (
	Idle Phase = iota
	Running
)

func (p Phase) String() string {
	if p == Running {
		return "running"
	}
	return "idle"
}

// Params are the start parameters of one run.
type Params struct {
	Start     flight.Position
	Waypoints []flight.Waypoint
	Gains     flight.Gains
	LOSGain   float64
	RTL       bool
	Dt        float64

	// MaxTicks bounds the run; 0 means unbounded.
	MaxTicks int
	// HistoryLimit keeps only the newest frames; 0 keeps all.
	HistoryLimit int
	// ApproachGain overrides the position integrator gain when > 0.
	ApproachGain float64
	// YawLaw defaults to control.ZeroYaw.
	YawLaw control.YawLaw
}

func DefaultParams() Params {
	return Params{
		Gains:   flight.Gains{Kp: 1, Ki: 0, Kd: 0.1},
		LOSGain: DefaultLOSGain,
		Dt:      DefaultDt,
	}
}

// Validate checks every numeric input once, before a run starts.
func (p Params) Validate() error {
	if !finite(p.Dt) || p.Dt <= 0 {
		return &flight.ConfigError{Field: "dt", Reason: fmt.Sprintf("must be positive and finite, got %v", p.Dt)}
	}
	if !p.Start.IsFinite() {
		return &flight.ConfigError{Field: "start", Reason: "non-finite coordinate"}
	}
	for i, wp := range p.Waypoints {
		if !wp.IsFinite() {
			return &flight.ConfigError{Field: fmt.Sprintf("waypoints[%d]", i), Reason: "non-finite coordinate"}
		}
	}
	if !p.Gains.IsFinite() {
		return &flight.ConfigError{Field: "gains", Reason: "non-finite gain"}
	}
	if p.Gains.IntegralLimit < 0 {
		return &flight.ConfigError{Field: "gains.integral_limit", Reason: "must not be negative"}
	}
	if !finite(p.LOSGain) {
		return &flight.ConfigError{Field: "los_gain", Reason: "non-finite gain"}
	}
	if !finite(p.ApproachGain) || p.ApproachGain < 0 {
		return &flight.ConfigError{Field: "approach_gain", Reason: "must be finite and not negative"}
	}
	if p.MaxTicks < 0 {
		return &flight.ConfigError{Field: "max_ticks", Reason: "must not be negative"}
	}
	if p.HistoryLimit < 0 {
		return &flight.ConfigError{Field: "history_limit", Reason: "must not be negative"}
	}
	return nil
}

// Handle identifies one started run.
type Handle struct {
	ID     uuid.UUID
	Params Params
}

// Observer is notified after every appended frame, outside the
// simulator's lock.
type Observer interface {
	OnFrame(f flight.Frame)
}

type ObserverFunc func(f flight.Frame)

func (fn ObserverFunc) OnFrame(f flight.Frame) { fn(f) }

// Metric accumulates a scalar over a run. target is the guidance target
// used for the frame.
type Metric interface {
	Name() string
	Observe(f flight.Frame, target flight.Position)
	Value() float64
	Reset()
}

type Result struct {
	Handle  Handle
	Frames  []flight.Frame
	Mission guidance.Mission
	Metrics map[string]float64
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
