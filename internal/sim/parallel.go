package sim

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Ensemble runs independent simulations in parallel. Each run gets its
// own Simulator; nothing is shared but the logger.
type Ensemble struct {
	logger  *zap.Logger
	workers int
	metrics func() []Metric
}

type EnsembleOption func(*Ensemble)

func WithWorkers(n int) EnsembleOption {
	return func(e *Ensemble) {
		if n > 0 {
			e.workers = n
		}
	}
}

func WithEnsembleLogger(l *zap.Logger) EnsembleOption {
	return func(e *Ensemble) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics supplies a factory so every run observes fresh metric
// instances.
func WithMetrics(factory func() []Metric) EnsembleOption {
	return func(e *Ensemble) { e.metrics = factory }
}

func NewEnsemble(opts ...EnsembleOption) *Ensemble {
	e := &Ensemble{
		logger:  zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run starts one simulation per entry in params and ticks each up to
// ticks times (or to its step budget when ticks <= 0). Results keep the
// order of params. The first failing run cancels the rest.
func (e *Ensemble) Run(ctx context.Context, params []Params, ticks int) ([]*Result, error) {
	results := make([]*Result, len(params))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i := range params {
		g.Go(func() error {
			s := New(WithLogger(e.logger))
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}
			if _, err := s.Start(params[i]); err != nil {
				return err
			}
			if _, err := s.Run(ctx, ticks); err != nil {
				return err
			}
			results[i] = s.Result()
			s.Stop()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
