package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexshd/antifragile"
)

type triadEncoding struct {
	Name        string `json:"name" yaml:"name"`
	Byte        uint8  `json:"byte" yaml:"byte"`
	Description string `json:"description" yaml:"description"`
	JSON        string `json:"json" yaml:"json"`
}

func newTriadCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "triad [name|0|1|2]",
		Short:   "Show the encodings of one or all Triad values",
		Example: "  antifragile triad\n  antifragile triad Antifragile\n  antifragile triad 0 -o json",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}

			triads := antifragile.All()
			if len(args) == 1 {
				t, err := parseTriadArg(args[0])
				if err != nil {
					return err
				}
				triads = []antifragile.Triad{t}
			}

			encodings := make([]triadEncoding, 0, len(triads))
			for _, t := range triads {
				enc, err := encode(t)
				if err != nil {
					return err
				}
				encodings = append(encodings, enc)
			}

			return render(cmd.OutOrStdout(), output, encodings, func(w io.Writer) error {
				for _, e := range encodings {
					if _, err := fmt.Fprintf(w, "%-12s %d  %s\n", e.Name, e.Byte, e.Description); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json, yaml")
	return cmd
}

// parseTriadArg accepts a canonical name in any case or a byte value.
func parseTriadArg(s string) (antifragile.Triad, error) {
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return antifragile.FromUint8(uint8(n))
	}
	return antifragile.ParseTriad(s)
}

func encode(t antifragile.Triad) (triadEncoding, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return triadEncoding{}, err
	}
	return triadEncoding{
		Name:        t.String(),
		Byte:        t.Uint8(),
		Description: t.Describe(),
		JSON:        string(data),
	}, nil
}
