// Package automation runs scripted mission sequences and one-parameter
// sweeps.
package automation

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/quadsim/internal/config"
	"github.com/san-kum/quadsim/internal/export"
	"github.com/san-kum/quadsim/internal/flight"
	"github.com/san-kum/quadsim/internal/metrics"
	"github.com/san-kum/quadsim/internal/optim"
	"github.com/san-kum/quadsim/internal/sim"
)

// Scenario defines a scripted simulation sequence
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one mission. Mission fields are laid over the preset
// (or the defaults when no preset is named).
type ScenarioStep struct {
	Name    string    `yaml:"name"`
	Preset  string    `yaml:"preset"`
	Mission yaml.Node `yaml:"mission"`
	Ticks   int       `yaml:"ticks"`
	SaveAs  string    `yaml:"save_as"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &scenario, nil
}

// Config resolves the step's effective configuration.
func (s *ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		if cfg = config.GetPreset(s.Preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}
	if !s.Mission.IsZero() {
		if err := s.Mission.Decode(cfg); err != nil {
			return nil, err
		}
	}
	if s.Ticks > 0 {
		cfg.Ticks = s.Ticks
	}
	return cfg, nil
}

// RunScenario executes all steps in order on a fresh simulator each.
// Steps with save_as write their frames as CSV.
func RunScenario(ctx context.Context, scenario *Scenario, logger *zap.Logger) ([]*sim.Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	results := make([]*sim.Result, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		logger.Info("scenario step",
			zap.String("scenario", scenario.Name),
			zap.Int("step", i+1),
			zap.Int("of", len(scenario.Steps)),
			zap.String("name", step.Name),
		)

		cfg, err := step.Config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		params, err := cfg.Params()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		s := sim.New(sim.WithLogger(logger), sim.WithMetric(metrics.Defaults()...))
		if _, err := s.Start(params); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}
		if _, err := s.Run(ctx, cfg.Ticks); err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}
		res := s.Result()
		s.Stop()

		if step.SaveAs != "" {
			if err := saveCSV(step.SaveAs, res.Frames); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}

		results = append(results, res)
	}

	return results, nil
}

func saveCSV(path string, frames []flight.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(f, frames); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ParameterSweep runs one mission across evenly spaced values of a
// single tunable.
type ParameterSweep struct {
	Base      sim.Params
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
	Ticks     int
}

// SweepResult holds results from a parameter sweep
type SweepResult struct {
	ParamValue float64
	Final      flight.Frame
	Waypoint   int
	Metrics    map[string]float64
}

// RunSweep executes a parameter sweep, all points in parallel.
func RunSweep(ctx context.Context, sweep *ParameterSweep, opts ...sim.EnsembleOption) ([]SweepResult, error) {
	if sweep.NumSteps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", sweep.NumSteps)
	}

	paramStep := (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)
	values := make([]float64, sweep.NumSteps)
	params := make([]sim.Params, sweep.NumSteps)
	for i := range values {
		values[i] = sweep.ParamMin + float64(i)*paramStep
		p, err := optim.Apply(sweep.Base, sweep.ParamName, values[i])
		if err != nil {
			return nil, err
		}
		params[i] = p
	}

	opts = append([]sim.EnsembleOption{sim.WithMetrics(metrics.Defaults)}, opts...)
	runs, err := sim.NewEnsemble(opts...).Run(ctx, params, sweep.Ticks)
	if err != nil {
		return nil, err
	}

	results := make([]SweepResult, len(runs))
	for i, r := range runs {
		results[i] = SweepResult{
			ParamValue: values[i],
			Waypoint:   r.Mission.Index,
			Metrics:    r.Metrics,
		}
		if n := len(r.Frames); n > 0 {
			results[i].Final = r.Frames[n-1]
		}
	}
	return results, nil
}
