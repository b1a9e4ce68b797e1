package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/voie/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the state definitions for consistency",
	Long:  `Loads the definition file and follows every static redirect, reporting dead targets and redirect cycles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		eng, err := newEngine(cmd.Context(), cmd, logger)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		if err := validator.ValidateStates(eng.States()); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d states are valid! ✅\n", len(eng.States()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
