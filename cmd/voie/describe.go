package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/voie/internal/presentation/tui"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "List the loaded states as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		eng, err := newEngine(cmd.Context(), cmd, logger)
		if err != nil {
			return err
		}

		md := tui.DescribeStates(eng.States(), eng.Current())

		// Raw markdown when piped.
		if !tui.IsInteractive(os.Stdout) {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		tui.PrintBanner(cmd.OutOrStdout())
		render, err := tui.NewRenderer()
		if err != nil {
			return err
		}
		out, err := render(md)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
