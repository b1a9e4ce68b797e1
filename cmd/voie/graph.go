package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/voie/internal/presentation/graph"
	"github.com/aretw0/voie/pkg/domain"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [state] [key=value...]",
	Short: "Export the state tree visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of the state tree.
When a state is given, the engine navigates there first and the active chain is highlighted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		eng, err := newEngine(ctx, cmd, logger)
		if err != nil {
			return err
		}

		var overlay *graph.GraphOverlay
		if len(args) > 0 {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}
			if err := eng.Go(ctx, domain.Target{Name: args[0], Params: params}); err != nil {
				return err
			}
			overlay = graph.OverlayFor(eng.Current())
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(eng.States(), overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
