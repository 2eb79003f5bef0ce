package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lamda",
		Short: "Tools for working with LAMDA molecular and atomic data files",
	}

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
