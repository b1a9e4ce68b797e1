package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/voie"
	"github.com/aretw0/voie/internal/logging"
	"github.com/aretw0/voie/pkg/adapters/file"
	"github.com/aretw0/voie/pkg/domain"
)

var rootCmd = &cobra.Command{
	Use:           "voie",
	Short:         "voie is a hierarchical URL-addressable state engine",
	Long:          `voie loads a tree of states from a definition file and lets you inspect, match and navigate it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "states.yaml", "State definition file (.yaml, .toml or .json)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
}

// newLogger builds the logger configured by the persistent flags.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	levelFlag, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")

	level, err := logging.ParseLevel(levelFlag)
	if err != nil {
		return nil, err
	}
	return logging.New(level, format), nil
}

// newEngine loads the definition file into a fresh engine.
func newEngine(ctx context.Context, cmd *cobra.Command, logger *slog.Logger, opts ...voie.Option) (*voie.Engine, error) {
	path, _ := cmd.Flags().GetString("file")

	eng, err := voie.New(append([]voie.Option{voie.WithLogger(logger)}, opts...)...)
	if err != nil {
		return nil, err
	}
	if err := eng.Load(ctx, file.NewLoader(path)); err != nil {
		return nil, err
	}
	logger.Debug("definitions loaded", "file", path, "states", len(eng.States()))
	return eng, nil
}

// parseParams turns "key=value" arguments into params. Repeated keys collect
// into a []string.
func parseParams(args []string) (domain.Params, error) {
	params := domain.Params{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param %q (want key=value)", arg)
		}
		switch prev := params[key].(type) {
		case nil:
			params[key] = value
		case string:
			params[key] = []string{prev, value}
		case []string:
			params[key] = append(prev, value)
		}
	}
	return params, nil
}
