package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexshd/antifragile/internal/config"
	"github.com/alexshd/antifragile/internal/survey"
)

type surveyFlags struct {
	file    string
	workers int
	output  string
}

type surveyReport struct {
	Results []survey.Result `json:"results" yaml:"results"`
	Summary survey.Summary  `json:"summary" yaml:"summary"`
}

func newSurveyCmd() *cobra.Command {
	var flags surveyFlags

	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Classify every system listed in a YAML survey file",
		Long: "survey loads a YAML file of expressions and models, classifies them concurrently\n" +
			"and prints one row per system. It exits non-zero when any system fails to\n" +
			"evaluate or contradicts its expect: field.",
		Example: "  antifragile survey -f examples/survey.yaml\n  antifragile survey -f systems.yaml --workers 8 -o yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSurvey(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.file, "file", "f", "", "Survey file (required)")
	f.IntVar(&flags.workers, "workers", 0, "Concurrent evaluations; 0 uses the file's setting")
	f.StringVarP(&flags.output, "output", "o", outputText, "Output format: text, json, yaml")

	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runSurvey(cmd *cobra.Command, flags surveyFlags) error {
	if err := checkOutput(flags.output); err != nil {
		return err
	}

	s, err := config.Load(flags.file)
	if err != nil {
		return err
	}

	jobs := make([]survey.Job, 0, len(s.Systems))
	for _, e := range s.Systems {
		sys, err := e.System()
		if err != nil {
			return fmt.Errorf("system %q: %w", e.Name, err)
		}
		at, delta, tol := e.Point(s.Defaults)
		jobs = append(jobs, survey.Job{
			Name:      e.Name,
			System:    sys,
			At:        at,
			Delta:     delta,
			Tolerance: tol,
			Expect:    e.Expect,
		})
	}

	cfg := survey.Config{Workers: s.Workers}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}

	results, err := survey.Run(cmd.Context(), jobs, cfg)
	if err != nil {
		return err
	}

	report := surveyReport{Results: results, Summary: survey.Summarize(results)}
	err = render(cmd.OutOrStdout(), flags.output, report, func(w io.Writer) error {
		return writeSurvey(w, report)
	})
	if err != nil {
		return err
	}

	if !report.Summary.OK() {
		return fmt.Errorf("survey: %d error(s), %d mismatch(es)", report.Summary.Errors, report.Summary.Mismatches)
	}
	return nil
}

func writeSurvey(w io.Writer, report surveyReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tAT\tDELTA\tSUM\tTWIN\tCLASSIFICATION\tNOTE")
	for _, r := range report.Results {
		note := ""
		switch {
		case r.Err != nil:
			note = r.Error
		case r.Mismatch():
			note = "expected " + r.Expect.String()
		}
		fmt.Fprintf(tw, "%s\t%v\t%v\t%.6g\t%.6g\t%s\t%s\n",
			r.Name, r.At, r.Delta, r.Sum, r.Twin, r.Classification, note)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	sm := report.Summary
	_, err := fmt.Fprintf(w, "\n%d antifragile, %d robust, %d fragile, %d error(s), %d mismatch(es)\n",
		sm.Antifragile, sm.Robust, sm.Fragile, sm.Errors, sm.Mismatches)
	return err
}
