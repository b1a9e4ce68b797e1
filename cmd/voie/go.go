package main

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/voie"
	"github.com/aretw0/voie/internal/presentation/tui"
	"github.com/aretw0/voie/pkg/adapters/memory"
	"github.com/aretw0/voie/pkg/domain"
)

var goCmd = &cobra.Command{
	Use:   "go <state> [key=value...]",
	Short: "Navigate to a state and print the resulting chain",
	Long: `Navigates to the named state, following redirects, and prints the active chain with its params
followed by the resulting URL. Use --from to start at a URL first, so ancestor reuse is visible.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		noColor, _ := cmd.Flags().GetBool("no-color")

		params, err := parseParams(args[1:])
		if err != nil {
			return err
		}
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		var hopts []memory.HistoryOption
		if from != "" {
			hopts = append(hopts, memory.WithInitialURL(from))
		}
		eng, err := newEngine(ctx, cmd, logger, voie.WithHistory(memory.NewHistory(hopts...)))
		if err != nil {
			return err
		}
		if from != "" {
			if err := eng.Start(ctx); err != nil {
				return fmt.Errorf("start at %q: %w", from, err)
			}
			defer eng.Stop()
		}

		if err := eng.Go(ctx, domain.Target{Name: args[0], Params: params}); err != nil {
			return err
		}

		var opts []termenv.OutputOption
		if noColor {
			opts = append(opts, termenv.WithProfile(termenv.Ascii))
		}
		tui.NewPrinter(cmd.OutOrStdout(), opts...).PrintChain(eng.Current())

		url, err := eng.CurrentURL()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}

func init() {
	goCmd.Flags().String("from", "", "Start at this URL before navigating")
	goCmd.Flags().Bool("no-color", false, "Disable colored output")
	rootCmd.AddCommand(goCmd)
}
