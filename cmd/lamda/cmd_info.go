package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lamda-tools/lamda/lamda"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize the contents of a LAMDA data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read data file: %w", err)
			}

			doc, err := lamda.Parse(string(data))
			if err != nil {
				var perr *lamda.ParseError
				if errors.As(err, &perr) {
					fmt.Fprint(cmd.ErrOrStderr(), perr.Annotate())
				}
				return fmt.Errorf("parse %s: %w", filename, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:        %s\n", doc.Name)
			fmt.Fprintf(out, "weight:      %g\n", doc.Weight)
			fmt.Fprintf(out, "levels:      %d\n", len(doc.EnergyLevels))
			fmt.Fprintf(out, "transitions: %d\n", len(doc.RadiativeTransitions))
			fmt.Fprintf(out, "partners:    %d\n", len(doc.CollisionPartners))
			for _, partner := range doc.CollisionPartners {
				fmt.Fprintf(out, "  %-9s  %d temperatures, %d rate rows\n",
					partner.ID, len(partner.Temperatures), len(partner.Rates))
			}
			if doc.Information != "" {
				fmt.Fprintf(out, "info:        %s\n", doc.Information)
			}
			return nil
		},
	}
}
