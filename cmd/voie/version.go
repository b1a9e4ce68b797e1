package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/voie"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of voie",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "voie version %s\n", strings.TrimSpace(voie.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
