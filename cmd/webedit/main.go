// Package main provides the webedit command.
//
// Usage:
//
//	webedit edit scene.yaml     Drag and resize the scene's editable boxes
//	webedit report scene.yaml   Print the geometry of the editable boxes
//	webedit version             Print version information
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "webedit",
		Short:         "Move and resize boxes in a terminal scene",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newEditCmd(), newReportCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "webedit version %s\n", version)
		},
	}
}
