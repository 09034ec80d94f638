package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "checkful [packages]",
	Short: "Advisory linter for fluent assertion chains",
	Long: `checkful inspects packages using a fluent assertion library.

It reports ordering constraints comparing incomparable types, and it
filters possibly-nil advisories of the nilness analysis through the
assertion guards already present in the code.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLint,
}

func main() {
	rootCmd.Flags().String("config", "", "path to a checkful YAML config")
	rootCmd.Flags().Bool("show-suppressed", false, "also print advisories withheld by assertion guards")
	rootCmd.Flags().Bool("no-nilness", false, "skip the nil-dereference analysis")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
