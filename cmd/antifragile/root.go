package main

import (
	"github.com/spf13/cobra"

	"github.com/alexshd/antifragile/internal/logging"
)

type rootFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "antifragile",
		Short: "Classify how systems respond to volatility",
		Long: "antifragile perturbs a payoff function around an operating point and compares\n" +
			"f(x-δ) + f(x+δ) with 2·f(x): convex payoffs are antifragile, concave ones\n" +
			"fragile, linear ones robust.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			format, err := logging.ParseFormat(flags.logFormat)
			if err != nil {
				return err
			}
			logging.Init(logging.Options{
				Level:  level,
				Format: format,
				Writer: cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "tint", "Log format: tint or json")

	cmd.AddCommand(newClassifyCmd())
	cmd.AddCommand(newSurveyCmd())
	cmd.AddCommand(newTriadCmd())
	return cmd
}
