package main

import (
	"github.com/spf13/cobra"

	"github.com/grindlemire/webedit"
	"github.com/grindlemire/webedit/internal/scene"
)

func newReportCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "report <scene.yaml>",
		Short: "Print the geometry of a scene's boxes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scene.LoadFile(args[0])
			if err != nil {
				return err
			}
			var nodes []webedit.Node
			for _, e := range sc.Elements() {
				if all || webedit.HasTargetClass(e) {
					nodes = append(nodes, e)
				}
			}
			return webedit.NewReporter(cmd.OutOrStdout()).Report(nodes...)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include boxes that are not editable")
	return cmd
}
