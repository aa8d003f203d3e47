// Package survey classifies many systems concurrently.
package survey

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/alexshd/antifragile"
	"github.com/alexshd/antifragile/internal/logging"
)

// Job is one system to classify.
type Job struct {
	Name      string
	System    antifragile.System[float64, float64]
	At        float64
	Delta     float64
	Tolerance float64

	// Expect, when set, is compared with the classification.
	Expect *antifragile.Triad
}

// Result is the outcome of one Job. Its JSON form is written by
// MarshalJSON so that NaN and ±Inf payoffs survive.
type Result struct {
	Name           string             `yaml:"name"`
	At             float64            `yaml:"at"`
	Delta          float64            `yaml:"delta"`
	Tolerance      float64            `yaml:"tolerance,omitempty"`
	Below          float64            `yaml:"below"`
	Center         float64            `yaml:"center"`
	Above          float64            `yaml:"above"`
	Sum            float64            `yaml:"sum"`
	Twin           float64            `yaml:"twin"`
	Classification antifragile.Triad  `yaml:"classification"`
	Expect         *antifragile.Triad `yaml:"expect,omitempty"`
	Error          string             `yaml:"error,omitempty"`

	Err error `yaml:"-"`
}

// Mismatch reports whether the result contradicts its expectation.
func (r Result) Mismatch() bool {
	return r.Expect != nil && *r.Expect != r.Classification
}

// Config controls a survey run.
type Config struct {
	// Workers bounds concurrent evaluations. Zero means one per CPU.
	Workers int
}

// DefaultConfig returns one worker per CPU.
func DefaultConfig() Config {
	return Config{Workers: runtime.NumCPU()}
}

// errReporter is implemented by systems that remember evaluation failures,
// such as compiled expressions.
type errReporter interface {
	Err() error
}

// Run classifies every job and returns results in job order.
//
// A failing job is reported in its Result and does not stop the others.
// Run itself only fails when ctx is cancelled; results for jobs that
// never started are then left zero.
func Run(ctx context.Context, jobs []Job, cfg Config) ([]Result, error) {
	log := logging.New("survey")

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = evaluate(job)
			log.Debug("classified",
				"name", job.Name,
				"at", job.At,
				"delta", job.Delta,
				"triad", results[i].Classification)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("survey: %w", err)
	}
	// Jobs skipped after cancellation never report through Wait.
	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("survey: %w", err)
	}

	log.Info("survey complete", "systems", len(jobs), "workers", workers)
	return results, nil
}

func evaluate(job Job) (r Result) {
	r = Result{
		Name:      job.Name,
		At:        job.At,
		Delta:     job.Delta,
		Tolerance: job.Tolerance,
		Expect:    job.Expect,
	}

	defer func() {
		if p := recover(); p != nil {
			r.Err = fmt.Errorf("%s: payoff panicked: %v", job.Name, p)
			r.Error = r.Err.Error()
			r.Classification = antifragile.Robust
		}
	}()

	e := antifragile.Evaluate(job.System, job.At, job.Delta)
	r.Below, r.Center, r.Above = e.Below, e.Center, e.Above
	r.Sum, r.Twin = e.Sum, e.Twin
	r.Classification = e.WithTolerance(job.Tolerance)

	if rep, ok := job.System.(errReporter); ok {
		if err := rep.Err(); err != nil {
			r.Err = err
			r.Error = err.Error()
		}
	}
	return r
}

// Summary counts results by outcome.
type Summary struct {
	Fragile     int `json:"fragile" yaml:"fragile"`
	Robust      int `json:"robust" yaml:"robust"`
	Antifragile int `json:"antifragile" yaml:"antifragile"`
	Errors      int `json:"errors" yaml:"errors"`
	Mismatches  int `json:"mismatches" yaml:"mismatches"`
}

// Summarize tallies results. Failed results count as errors only.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		if r.Err != nil {
			s.Errors++
			continue
		}
		switch r.Classification {
		case antifragile.Fragile:
			s.Fragile++
		case antifragile.Antifragile:
			s.Antifragile++
		default:
			s.Robust++
		}
		if r.Mismatch() {
			s.Mismatches++
		}
	}
	return s
}

// OK reports whether the survey had neither errors nor mismatches.
func (s Summary) OK() bool {
	return s.Errors == 0 && s.Mismatches == 0
}
