package config

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/alexshd/antifragile"
	"github.com/alexshd/antifragile/internal/expression"
)

type modelSpec struct {
	required []string
	defaults map[string]float64
	// counts must hold non-negative whole numbers.
	counts []string
	build  func(p map[string]float64) antifragile.System[float64, float64]
}

// models maps a survey model name to its parameters and constructor.
var models = map[string]modelSpec{
	"linear": {
		defaults: map[string]float64{"slope": 1, "intercept": 0},
		build: func(p map[string]float64) antifragile.System[float64, float64] {
			return antifragile.Linear{Slope: p["slope"], Intercept: p["intercept"]}
		},
	},
	"power": {
		required: []string{"exponent"},
		defaults: map[string]float64{"coefficient": 1},
		build: func(p map[string]float64) antifragile.System[float64, float64] {
			return antifragile.Power{Coefficient: p["coefficient"], Exponent: p["exponent"]}
		},
	},
	"root": {
		defaults: map[string]float64{"coefficient": 1},
		build: func(p map[string]float64) antifragile.System[float64, float64] {
			return antifragile.Root{Coefficient: p["coefficient"]}
		},
	},
	"usl": {
		required: []string{"lambda"},
		defaults: map[string]float64{"alpha": 0, "beta": 0},
		build: func(p map[string]float64) antifragile.System[float64, float64] {
			u := antifragile.USL{Lambda: p["lambda"], Alpha: p["alpha"], Beta: p["beta"]}
			// Surveys probe on a float axis; Throughput accepts fractional N.
			return antifragile.Func[float64, float64](u.Throughput)
		},
	},
	"logistic": {
		required: []string{"r"},
		build: func(p map[string]float64) antifragile.System[float64, float64] {
			return antifragile.Logistic{R: p["r"]}
		},
	},
	"service": {
		defaults: map[string]float64{
			"total_requests":       0,
			"cache_hits":           0,
			"cache_misses":         0,
			"avg_response_time_ms": 1,
		},
		counts: []string{"total_requests", "cache_hits", "cache_misses"},
		build: func(p map[string]float64) antifragile.System[float64, float64] {
			return antifragile.ServiceSnapshot{
				TotalRequests:     uint64(p["total_requests"]),
				CacheHits:         uint64(p["cache_hits"]),
				CacheMisses:       uint64(p["cache_misses"]),
				AvgResponseTimeMs: p["avg_response_time_ms"],
			}
		},
	},
}

// Models lists the model names a survey entry may use, sorted.
func Models() []string {
	return slices.Sorted(maps.Keys(models))
}

func checkParams(model string, params map[string]float64) error {
	m, ok := models[model]
	if !ok {
		return fmt.Errorf("unknown model %q (expected one of %s)", model, strings.Join(Models(), ", "))
	}

	for _, name := range m.required {
		if _, ok := params[name]; !ok {
			return fmt.Errorf("model %s: missing param %q", model, name)
		}
	}
	for name := range params {
		if _, ok := m.defaults[name]; ok {
			continue
		}
		if slices.Contains(m.required, name) {
			continue
		}
		return fmt.Errorf("model %s: unknown param %q", model, name)
	}
	for _, name := range m.counts {
		v, ok := params[name]
		if !ok {
			continue
		}
		if !isCount(v) {
			return fmt.Errorf("model %s: param %q must be a non-negative whole number, got %v", model, name, v)
		}
	}
	return nil
}

// isCount reports whether v converts to uint64 without loss.
func isCount(v float64) bool {
	return v >= 0 && v < math.MaxUint64 && v == math.Trunc(v)
}

// System builds the payoff function for e. Expression entries are
// compiled; model entries are instantiated with defaults filled in.
func (e Entry) System() (antifragile.System[float64, float64], error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	if e.Expr != "" {
		sys, err := expression.Compile(e.Expr)
		if err != nil {
			return nil, err
		}
		return sys, nil
	}

	m := models[e.Model]
	p := maps.Clone(m.defaults)
	if p == nil {
		p = make(map[string]float64, len(e.Params))
	}
	maps.Copy(p, e.Params)
	return m.build(p), nil
}
