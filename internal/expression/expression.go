// Package expression compiles textual payoff functions such as "x*x" or
// "sqrt(abs(x))" into antifragile systems.
package expression

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Variable is the name the stressor is bound to inside an expression.
const Variable = "x"

// ErrEmpty is returned by Compile for a blank source.
var ErrEmpty = errors.New("expression: empty source")

// functions available to every expression on top of expr's builtins.
var functions = map[string]any{
	"sqrt": math.Sqrt,
	"exp":  math.Exp,
	"log":  math.Log,
	"pow":  math.Pow,
	"sin":  math.Sin,
	"cos":  math.Cos,
}

func env(x float64) map[string]any {
	m := make(map[string]any, len(functions)+1)
	for k, v := range functions {
		m[k] = v
	}
	m[Variable] = x
	return m
}

// System is a compiled payoff expression. It implements
// antifragile.System[float64, float64].
//
// Evaluation failures cannot be returned through Payoff. The first one is
// kept and reported by Err, and the failing call returns NaN, which the
// classifier treats as Robust.
type System struct {
	source  string
	program *vm.Program

	mu  sync.Mutex
	err error
}

// Compile parses and type-checks src. The result must be numeric.
func Compile(src string) (*System, error) {
	if src == "" {
		return nil, ErrEmpty
	}

	program, err := expr.Compile(src, expr.Env(env(0)), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("expression %q: %w", src, err)
	}
	return &System{source: src, program: program}, nil
}

// MustCompile is like Compile but panics on error. Use it for constants.
func MustCompile(src string) *System {
	s, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return s
}

// Payoff evaluates the expression with x bound to stressor.
func (s *System) Payoff(stressor float64) float64 {
	out, err := expr.Run(s.program, env(stressor))
	if err != nil {
		s.record(fmt.Errorf("expression %q at x=%v: %w", s.source, stressor, err))
		return math.NaN()
	}

	v, ok := out.(float64)
	if !ok {
		s.record(fmt.Errorf("expression %q at x=%v: result %T is not a number", s.source, stressor, out))
		return math.NaN()
	}
	return v
}

// Err returns the first evaluation failure, if any.
func (s *System) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// String returns the source text.
func (s *System) String() string {
	return s.source
}

func (s *System) record(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}
