package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexshd/antifragile"
	"github.com/alexshd/antifragile/internal/config"
	"github.com/alexshd/antifragile/internal/survey"
)

var errExpectation = errors.New("classification does not match expectation")

type classifyFlags struct {
	expr      string
	model     string
	params    map[string]string
	at        float64
	delta     float64
	tolerance float64
	expect    string
	output    string
}

func newClassifyCmd() *cobra.Command {
	var flags classifyFlags

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify one payoff expression or model",
		Example: `  antifragile classify --expr "x*x" --at 10 --delta 1
  antifragile classify --expr "sqrt(x)" -o json
  antifragile classify --model usl --param lambda=1000,alpha=0.05,beta=0.01 --at 8
  antifragile classify --expr "2*x + 0.0000000001*x*x" --tolerance 1e-6 --expect robust`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClassify(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.expr, "expr", "", "Payoff expression over x, e.g. \"x*x\"")
	f.StringVar(&flags.model, "model", "", "Named model: "+strings.Join(config.Models(), ", "))
	f.StringToStringVar(&flags.params, "param", nil, "Model parameters as name=value pairs")
	f.Float64Var(&flags.at, "at", 10, "Operating point x")
	f.Float64Var(&flags.delta, "delta", 1, "Perturbation δ")
	f.Float64Var(&flags.tolerance, "tolerance", 0, "Dead band around 2·f(x); 0 compares exactly")
	f.StringVar(&flags.expect, "expect", "", "Fail unless the classification matches")
	f.StringVarP(&flags.output, "output", "o", outputText, "Output format: text, json, yaml")

	cmd.MarkFlagsMutuallyExclusive("expr", "model")
	cmd.MarkFlagsOneRequired("expr", "model")
	return cmd
}

func runClassify(cmd *cobra.Command, flags classifyFlags) error {
	if err := checkOutput(flags.output); err != nil {
		return err
	}

	entry := config.Entry{
		Name:      flags.expr,
		Expr:      flags.expr,
		Model:     flags.model,
		Tolerance: &flags.tolerance,
	}
	if flags.model != "" {
		entry.Name = flags.model
		params, err := parseParams(flags.params)
		if err != nil {
			return err
		}
		entry.Params = params
	}
	if flags.expect != "" {
		want, err := antifragile.ParseTriad(flags.expect)
		if err != nil {
			return fmt.Errorf("--expect: %w", err)
		}
		entry.Expect = &want
	}

	sys, err := entry.System()
	if err != nil {
		return err
	}

	results, err := survey.Run(cmd.Context(), []survey.Job{{
		Name:      entry.Name,
		System:    sys,
		At:        flags.at,
		Delta:     flags.delta,
		Tolerance: flags.tolerance,
		Expect:    entry.Expect,
	}}, survey.Config{Workers: 1})
	if err != nil {
		return err
	}
	r := results[0]

	err = render(cmd.OutOrStdout(), flags.output, r, func(w io.Writer) error {
		return writeResult(w, r)
	})
	if err != nil {
		return err
	}

	if r.Err != nil {
		return r.Err
	}
	if r.Mismatch() {
		return fmt.Errorf("%w: got %s, want %s", errExpectation, r.Classification, *r.Expect)
	}
	return nil
}

func writeResult(w io.Writer, r survey.Result) error {
	_, err := fmt.Fprintf(w,
		"%s at x=%v, δ=%v\n"+
			"  f(x-δ) = %v\n"+
			"  f(x)   = %v\n"+
			"  f(x+δ) = %v\n"+
			"  f(x-δ) + f(x+δ) = %v vs 2·f(x) = %v\n"+
			"%s\n",
		r.Name, r.At, r.Delta,
		r.Below, r.Center, r.Above,
		r.Sum, r.Twin,
		r.Classification.Describe())
	return err
}

func parseParams(raw map[string]string) (map[string]float64, error) {
	params := make(map[string]float64, len(raw))
	for name, v := range raw {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("--param %s: %w", name, err)
		}
		params[name] = f
	}
	return params, nil
}
