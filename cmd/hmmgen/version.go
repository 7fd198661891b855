package main

import (
	"fmt"

	"github.com/katalvlaran/hmmgen"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of hmmgen",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hmmgen version %s\n", hmmgen.Version)
		},
	}
}
