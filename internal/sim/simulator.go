package sim

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/san-kum/quadsim/internal/control"
	"github.com/san-kum/quadsim/internal/flight"
	"github.com/san-kum/quadsim/internal/guidance"
	"github.com/san-kum/quadsim/internal/integrators"
	"github.com/san-kum/quadsim/internal/mixer"
)

type Option func(*Simulator)

// WithLogger sets the logger used for run lifecycle events. The default
// discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetric registers metrics at construction time.
func WithMetric(m ...Metric) Option {
	return func(s *Simulator) { s.metrics = append(s.metrics, m...) }
}

// WithObserver registers observers at construction time.
func WithObserver(o ...Observer) Option {
	return func(s *Simulator) { s.observers = append(s.observers, o...) }
}

type Simulator struct {
	mu sync.RWMutex

	logger    *zap.Logger
	metrics   []Metric
	observers []Observer

	phase    Phase
	handle   Handle
	pid      *control.PID
	euler    *integrators.Euler
	approach *integrators.Approach
	yaw      control.YawLaw
	mission  guidance.Mission

	state   flight.ControlState
	pos     flight.Position
	target  flight.Position
	ticks   int
	history []flight.Frame
}

func New(opts ...Option) *Simulator {
	s := &Simulator{
		logger:    zap.NewNop(),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		euler:     integrators.NewEuler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) AddMetric(m Metric) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = append(s.metrics, m)
}

func (s *Simulator) AddObserver(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Start validates p and begins a fresh run. Any previous run is
// discarded, history included. On error the simulator is left Idle with
// its previous history untouched.
func (s *Simulator) Start(p Params) (Handle, error) {
	if err := p.Validate(); err != nil {
		s.logger.Warn("start rejected", zap.Error(err))
		return Handle{}, err
	}

	p.Waypoints = append([]flight.Waypoint(nil), p.Waypoints...)
	if p.YawLaw == nil {
		p.YawLaw = control.ZeroYaw{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.handle = Handle{ID: uuid.New(), Params: p}
	s.pid = control.NewPID(p.Gains)
	s.approach = integrators.NewApproach()
	if p.ApproachGain > 0 {
		s.approach.Gain = p.ApproachGain
	}
	s.yaw = p.YawLaw
	s.mission = guidance.NewMission(p.Start, p.Waypoints, p.RTL)
	s.state = flight.ControlState{}
	s.pos = p.Start
	s.target = p.Start
	s.ticks = 0
	s.history = make([]flight.Frame, 0, historyCap(p))
	for _, m := range s.metrics {
		m.Reset()
	}
	s.phase = Running

	s.logger.Info("run started",
		zap.Stringer("run_id", s.handle.ID),
		zap.Int("waypoints", len(p.Waypoints)),
		zap.Bool("rtl", p.RTL),
		zap.Float64("dt", p.Dt),
		zap.Int("max_ticks", p.MaxTicks),
	)
	return s.handle, nil
}

func historyCap(p Params) int {
	n := 1024
	if p.MaxTicks > 0 && p.MaxTicks < n {
		n = p.MaxTicks
	}
	if p.HistoryLimit > 0 && p.HistoryLimit < n {
		n = p.HistoryLimit
	}
	return n
}

// Tick advances the run by one step and returns the appended frame.
// Outside Running it returns flight.ErrNotRunning and changes nothing.
func (s *Simulator) Tick() (flight.Frame, error) {
	s.mu.Lock()
	frame, err := s.tickLocked()
	observers := s.observers
	s.mu.Unlock()

	if err != nil {
		return flight.Frame{}, err
	}
	for _, o := range observers {
		o.OnFrame(frame)
	}
	return frame, nil
}

func (s *Simulator) tickLocked() (flight.Frame, error) {
	if s.phase != Running {
		return flight.Frame{}, flight.ErrNotRunning
	}
	p := s.handle.Params
	if p.MaxTicks > 0 && s.ticks >= p.MaxTicks {
		s.phase = Idle
		s.logger.Warn("step budget exhausted",
			zap.Stringer("run_id", s.handle.ID),
			zap.Int("tick", s.ticks),
		)
		return flight.Frame{}, flight.ErrStepBudgetExhausted
	}

	target, next := guidance.ComputeTarget(s.pos, s.mission)
	if next.Index != s.mission.Index {
		s.logger.Debug("waypoint captured",
			zap.Stringer("run_id", s.handle.ID),
			zap.Int("waypoint", s.mission.Index),
			zap.Int("tick", s.ticks+1),
		)
	}

	yaw := s.yaw.DesiredYaw(s.pos, target, s.state)
	desired := control.Desired(target.Sub(s.pos), p.LOSGain, yaw)
	rate := s.pid.Compute(s.state, desired, p.Dt)
	s.state = s.euler.Step(s.state, rate, p.Dt)
	motors := mixer.Mix(s.state)
	s.pos = s.approach.Advance(s.pos, target)

	s.mission = next
	s.target = target
	s.ticks++

	frame := flight.Frame{
		Time:          float64(s.ticks) * p.Dt,
		Position:      s.pos,
		ControlState:  s.state,
		MotorCommands: motors,
	}
	s.history = append(s.history, frame)
	if lim := p.HistoryLimit; lim > 0 && len(s.history) > lim {
		s.history = s.history[len(s.history)-lim:]
	}
	for _, m := range s.metrics {
		m.Observe(frame, target)
	}
	return frame, nil
}

// Run ticks up to n times, or until the step budget is exhausted when
// n <= 0. Budget exhaustion ends the loop without error.
func (s *Simulator) Run(ctx context.Context, n int) ([]flight.Frame, error) {
	if n <= 0 && s.Handle().Params.MaxTicks == 0 {
		s.logger.Debug("unbounded run, waiting on context")
	}

	frames := make([]flight.Frame, 0, max(n, 0))
	for i := 0; n <= 0 || i < n; i++ {
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		default:
		}

		f, err := s.Tick()
		if errors.Is(err, flight.ErrStepBudgetExhausted) {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// Stop ends the run. Controller and mission state are discarded; the
// history stays readable until the next Start or Reset.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == Running {
		s.logger.Info("run stopped",
			zap.Stringer("run_id", s.handle.ID),
			zap.Int("tick", s.ticks),
		)
	}
	s.phase = Idle
	s.pid = nil
	s.mission = guidance.Mission{}
}

// Reset stops any run and clears the history.
func (s *Simulator) Reset() {
	s.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.ticks = 0
	s.state = flight.ControlState{}
	for _, m := range s.metrics {
		m.Reset()
	}
}

// History returns a copy of the recorded frames, oldest first.
func (s *Simulator) History() []flight.Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]flight.Frame, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Simulator) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

func (s *Simulator) Handle() Handle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handle
}

// Ticks is the number of frames produced since Start, including any
// dropped by the history limit.
func (s *Simulator) Ticks() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ticks
}

// Mission returns a snapshot of the guidance state.
func (s *Simulator) Mission() guidance.Mission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := s.mission
	m.Waypoints = append([]flight.Waypoint(nil), m.Waypoints...)
	return m
}

// Target is the guidance target used by the most recent tick.
func (s *Simulator) Target() flight.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target
}

// PIDState returns the controller memory of the active run.
func (s *Simulator) PIDState() (control.PIDState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pid == nil {
		return control.PIDState{}, false
	}
	return s.pid.State(), true
}

// Gains returns the live controller gains, which may differ from the
// start parameters after SetGain.
func (s *Simulator) Gains() (flight.Gains, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pid == nil {
		return flight.Gains{}, false
	}
	return s.pid.Gains, true
}

// SetGain retunes the running controller. name is one of Kp, Ki or Kd.
func (s *Simulator) SetGain(name string, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != Running || s.pid == nil {
		return flight.ErrNotRunning
	}
	if err := s.pid.SetParam(name, value); err != nil {
		return err
	}
	s.logger.Debug("gain updated",
		zap.Stringer("run_id", s.handle.ID),
		zap.String("param", name),
		zap.Float64("value", value),
	)
	return nil
}

func (s *Simulator) Metrics() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Result bundles the current history, mission and metric values.
func (s *Simulator) Result() *Result {
	return &Result{
		Handle:  s.Handle(),
		Frames:  s.History(),
		Mission: s.Mission(),
		Metrics: s.Metrics(),
	}
}
