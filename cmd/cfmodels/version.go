package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	name    = "cfmodels"
	version = "0.9.1"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",

		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", name, version)
		},
	}
}
