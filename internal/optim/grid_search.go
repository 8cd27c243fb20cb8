package optim

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/quadsim/internal/metrics"
	"github.com/san-kum/quadsim/internal/sim"
)

// Trial is one evaluated point of the grid.
type Trial struct {
	Params map[string]float64
	Score  float64
}

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	opts       []sim.EnsembleOption
}

// NewGridSearch searches every combination of ranges. Names are those
// accepted by Apply.
func NewGridSearch(params []string, ranges [][]float64, opts ...sim.EnsembleOption) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges, opts: opts}
}

// Apply sets one tunable on p.
func Apply(p sim.Params, name string, value float64) (sim.Params, error) {
	switch name {
	case "kp":
		p.Gains.Kp = value
	case "ki":
		p.Gains.Ki = value
	case "kd":
		p.Gains.Kd = value
	case "integral_limit":
		p.Gains.IntegralLimit = value
	case "los_gain":
		p.LOSGain = value
	default:
		return p, fmt.Errorf("unknown param: %s", name)
	}
	return p, nil
}

// Combinations enumerates the grid in row-major order.
func (g *GridSearch) Combinations() []map[string]float64 {
	var out []map[string]float64
	g.combine(0, make(map[string]float64), &out)
	return out
}

func (g *GridSearch) combine(depth int, current map[string]float64, out *[]map[string]float64) {
	if depth == len(g.paramNames) {
		*out = append(*out, current)
		return
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		g.combine(depth+1, newParams, out)
	}
}

// Search runs every combination for ticks steps from base and scores
// each run by metricName, lower being better. Trials come back sorted
// best first.
func (g *GridSearch) Search(ctx context.Context, base sim.Params, ticks int, metricName string) (Trial, []Trial, error) {
	if len(g.paramNames) != len(g.ranges) {
		return Trial{}, nil, fmt.Errorf("grid: %d names for %d ranges", len(g.paramNames), len(g.ranges))
	}

	combos := g.Combinations()
	params := make([]sim.Params, len(combos))
	for i, combo := range combos {
		p := base
		for _, name := range g.paramNames {
			var err error
			if p, err = Apply(p, name, combo[name]); err != nil {
				return Trial{}, nil, err
			}
		}
		params[i] = p
	}

	opts := append([]sim.EnsembleOption{sim.WithMetrics(metrics.Defaults)}, g.opts...)
	results, err := sim.NewEnsemble(opts...).Run(ctx, params, ticks)
	if err != nil {
		return Trial{}, nil, err
	}

	trials := make([]Trial, len(results))
	for i, r := range results {
		score, ok := r.Metrics[metricName]
		if !ok {
			return Trial{}, nil, fmt.Errorf("unknown metric: %s", metricName)
		}
		if math.IsNaN(score) {
			score = math.Inf(1)
		}
		trials[i] = Trial{Params: combos[i], Score: score}
	}

	sort.SliceStable(trials, func(i, j int) bool { return trials[i].Score < trials[j].Score })
	if len(trials) == 0 {
		return Trial{Score: math.Inf(1)}, trials, nil
	}
	return trials[0], trials, nil
}
