package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Tests build a fresh tree per case.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hmmgen",
		Short: "hmmgen generates labeled sequences from a two-state hidden Markov model",
		Long: `hmmgen walks two emission Markov chains, switching between them according to a
clamped hidden state chain, and writes one <label,symbol> pair per line.
Without --config the built-in CpG island model is used.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "YAML or JSON model file (default: built-in CpG preset)")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(newGenerateCmd(), newValidateCmd(), newInspectCmd(), newVersionCmd())
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
