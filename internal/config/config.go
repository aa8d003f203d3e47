// Package config loads survey files: YAML documents listing the systems to
// classify and where to probe them.
//
//	defaults:
//	  at: 10
//	  delta: 1
//	workers: 4
//	systems:
//	  - name: cache
//	    expr: "x ** 1.4"
//	    expect: antifragile
//	  - name: pool
//	    model: usl
//	    params: {lambda: 1000, alpha: 0.05, beta: 0.01}
//	    at: 8
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/alexshd/antifragile"
)

// Survey is a full survey document.
type Survey struct {
	Defaults Defaults `yaml:"defaults"`
	Workers  int      `yaml:"workers"`
	Systems  []Entry  `yaml:"systems"`
}

// Defaults apply to every entry that leaves the field unset.
type Defaults struct {
	At        float64 `yaml:"at"`
	Delta     float64 `yaml:"delta"`
	Tolerance float64 `yaml:"tolerance"`
}

// Entry describes one system. Exactly one of Expr and Model is set.
type Entry struct {
	Name   string             `yaml:"name"`
	Expr   string             `yaml:"expr,omitempty"`
	Model  string             `yaml:"model,omitempty"`
	Params map[string]float64 `yaml:"params,omitempty"`

	At        *float64 `yaml:"at,omitempty"`
	Delta     *float64 `yaml:"delta,omitempty"`
	Tolerance *float64 `yaml:"tolerance,omitempty"`

	// Expect, when set, is the classification the entry must earn.
	Expect *antifragile.Triad `yaml:"expect,omitempty"`
}

// DefaultSurvey returns an empty survey probing at x = 10 with δ = 1 and
// one worker per CPU.
func DefaultSurvey() Survey {
	return Survey{
		Defaults: Defaults{At: 10, Delta: 1},
		Workers:  runtime.NumCPU(),
	}
}

// Load reads a survey file, applies environment overrides and validates
// the result.
//
// Priority: env > file > defaults. Recognised variables are
// ANTIFRAGILE_WORKERS, ANTIFRAGILE_AT and ANTIFRAGILE_DELTA.
func Load(path string) (Survey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Survey{}, fmt.Errorf("read survey: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return Survey{}, err
	}

	if err := applyEnv(&s); err != nil {
		return Survey{}, err
	}

	if err := s.Validate(); err != nil {
		return Survey{}, fmt.Errorf("invalid survey %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a survey document on top of DefaultSurvey. It does not
// validate.
func Parse(data []byte) (Survey, error) {
	s := DefaultSurvey()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Survey{}, fmt.Errorf("parse survey yaml: %w", err)
	}
	return s, nil
}

func applyEnv(s *Survey) error {
	if v := os.Getenv("ANTIFRAGILE_WORKERS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ANTIFRAGILE_WORKERS: %w", err)
		}
		s.Workers = i
	}
	if v := os.Getenv("ANTIFRAGILE_AT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("ANTIFRAGILE_AT: %w", err)
		}
		s.Defaults.At = f
	}
	if v := os.Getenv("ANTIFRAGILE_DELTA"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("ANTIFRAGILE_DELTA: %w", err)
		}
		s.Defaults.Delta = f
	}
	return nil
}

// Validate checks the survey and every entry in it:
//   - at least one system
//   - non-empty, unique names
//   - exactly one of expr or model, with a known model and known params
//   - non-negative tolerances and worker count
func (s Survey) Validate() error {
	if len(s.Systems) == 0 {
		return errors.New("systems list is required and cannot be empty")
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", s.Workers)
	}
	if s.Defaults.Tolerance < 0 {
		return fmt.Errorf("defaults.tolerance must be >= 0, got %v", s.Defaults.Tolerance)
	}

	seen := make(map[string]int, len(s.Systems))
	for i, e := range s.Systems {
		if e.Name == "" {
			return fmt.Errorf("system %d: name is required", i)
		}
		if j, dup := seen[e.Name]; dup {
			return fmt.Errorf("system %q: duplicate name (also entry %d)", e.Name, j)
		}
		seen[e.Name] = i

		if err := e.Validate(); err != nil {
			return fmt.Errorf("system %q: %w", e.Name, err)
		}
	}
	return nil
}

// Validate checks a single entry in isolation.
func (e Entry) Validate() error {
	switch {
	case e.Expr == "" && e.Model == "":
		return errors.New("one of expr or model is required")
	case e.Expr != "" && e.Model != "":
		return errors.New("expr and model are mutually exclusive")
	case e.Expr != "" && len(e.Params) > 0:
		return errors.New("params only apply to model entries")
	}

	if e.Tolerance != nil && *e.Tolerance < 0 {
		return fmt.Errorf("tolerance must be >= 0, got %v", *e.Tolerance)
	}
	if e.Expect != nil && !e.Expect.Valid() {
		return fmt.Errorf("expect: %w", antifragile.ErrInvalidTriadValue)
	}

	if e.Model != "" {
		return checkParams(e.Model, e.Params)
	}
	return nil
}

// Point returns the operating point, perturbation and tolerance for e,
// falling back to d for anything e leaves unset.
func (e Entry) Point(d Defaults) (at, delta, tolerance float64) {
	at, delta, tolerance = d.At, d.Delta, d.Tolerance
	if e.At != nil {
		at = *e.At
	}
	if e.Delta != nil {
		delta = *e.Delta
	}
	if e.Tolerance != nil {
		tolerance = *e.Tolerance
	}
	return at, delta, tolerance
}
