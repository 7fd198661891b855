package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/hmmgen/generator"
	"github.com/katalvlaran/hmmgen/hidden"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the model configuration and print its normalized form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := loadFile(cmd)
			if err != nil {
				return err
			}
			cfg, err := cf.Build()
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			printReport(cmd.OutOrStdout(), cfg)
			return nil
		},
	}
}

func printReport(w io.Writer, cfg generator.Config) {
	fmt.Fprintf(w, "alphabet: %s\n", strings.Join(cfg.Alphabet.Symbols(), " "))
	fmt.Fprintf(w, "length:   %d\nseed:     %d\n", cfg.Length, cfg.Seed)
	fmt.Fprintf(w, "start:    %s (%s)\n", cfg.InitialState, cfg.Labels.Of(cfg.InitialState))
	fmt.Fprintf(w, "hidden (normalized):\n%s", cfg.Hidden.Normalized())
	for _, s := range [...]hidden.State{hidden.InRegion, hidden.OutOfRegion} {
		fmt.Fprintf(w, "%s label=%q min_dwell=%d initial=%d\n",
			s, cfg.Labels.Of(s), cfg.MinDwell[s], cfg.InitialEmission[s])
		fmt.Fprintf(w, "%s", cfg.Emission[s].Normalized())
	}
	for _, warn := range reachabilityWarnings(cfg) {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
	fmt.Fprintln(w, "configuration is valid")
}

// reachabilityWarnings names hidden states and symbols a run can never emit.
func reachabilityWarnings(cfg generator.Config) []string {
	var out []string
	if missing, err := cfg.Hidden.Unreachable(int(cfg.InitialState)); err == nil {
		for _, m := range missing {
			out = append(out, fmt.Sprintf("hidden state %s is unreachable from %s", hidden.State(m), cfg.InitialState))
		}
	}
	for _, s := range [...]hidden.State{hidden.InRegion, hidden.OutOfRegion} {
		missing, err := cfg.Emission[s].Unreachable(cfg.InitialEmission[s])
		if err != nil {
			continue
		}
		for _, m := range missing {
			sym, _ := cfg.Alphabet.Symbol(m)
			out = append(out, fmt.Sprintf("%s chain never emits %q", s, sym))
		}
	}
	return out
}
