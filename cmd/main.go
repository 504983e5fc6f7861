package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// main is the entry point of milestone-escrow. The root command only groups
// the subcommands; configuration is read from environment variables by each
// of them.
func main() {
	rootCmd := &cobra.Command{
		Use:           "milestone-escrow",
		Short:         "Milestone-based crowdfunding escrow",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		serveCommand(),
		migrateCommand(),
		seedCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
