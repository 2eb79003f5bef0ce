package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lamda-tools/lamda/lamda"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate LAMDA data files and report the first problem in each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read data file: %w", err)
				}

				if _, err := lamda.Parse(string(data)); err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", filename, err)
					var perr *lamda.ParseError
					if errors.As(err, &perr) && !quiet {
						fmt.Fprint(cmd.ErrOrStderr(), perr.Annotate())
					}
					continue
				}

				if !quiet {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", filename)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed validation", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report failures, without annotations")

	return cmd
}
