package main

import (
	"fmt"

	"github.com/katalvlaran/hmmgen/dataset"
	"github.com/katalvlaran/hmmgen/internal/adapters/file"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [path]",
		Short: "Summarize a generated dataset file (.xz supported, - for stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := file.Stdio
			if len(args) > 0 {
				path = args[0]
			}
			ds, err := file.Open(path)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "instances: %d\n", ds.NumInstances())
			fmt.Fprintf(w, "states:    %d\n", ds.NumStates())
			for id := 0; id < ds.NumStates(); id++ {
				s, _ := ds.State(id)
				fmt.Fprintf(w, "  %d %s\n", id, s)
			}
			fmt.Fprintf(w, "symbols:   %d\n", ds.NumSymbols())
			for id := 0; id < ds.NumSymbols(); id++ {
				s, _ := ds.Symbol(id)
				fmt.Fprintf(w, "  %d %s\n", id, s)
			}
			fmt.Fprintf(w, "blake3:    %s\n", dataset.Digest(ds.Pairs()))
			return nil
		},
	}
}
