package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/voie/pkg/domain"
)

var matchCmd = &cobra.Command{
	Use:   "match <url>",
	Short: "Find the state matching a URL",
	Long:  `Matches a URL (path plus optional query) against the states in registration order and prints the first match as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		eng, err := newEngine(cmd.Context(), cmd, logger)
		if err != nil {
			return err
		}

		state, params, ok := eng.Match(domain.ParseLocation(args[0]))
		if !ok {
			return fmt.Errorf("no state matches %q", args[0])
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"state":  state.Name(),
			"params": params,
		})
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}
