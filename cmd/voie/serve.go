package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aretw0/voie"
	httpAdapter "github.com/aretw0/voie/pkg/adapters/http"
	"github.com/aretw0/voie/pkg/adapters/memory"
	"github.com/aretw0/voie/pkg/domain"
	"github.com/aretw0/voie/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts a voie engine behind a JSON API over HTTP, with a Server-Sent Events stream
of context diffs at /events and Prometheus metrics at /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		startURL, _ := cmd.Flags().GetString("url")

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		metrics := observability.NewMetrics(reg)

		// Metrics and logs both ride the lifecycle hooks.
		hooks := domain.Combine(metrics.Hooks(), observability.LoggingHooks(logger))

		ctx := cmd.Context()
		eng, err := newEngine(ctx, cmd, logger,
			voie.WithHistory(memory.NewHistory(memory.WithInitialURL(startURL))),
			voie.WithLifecycleHooks(hooks),
		)
		if err != nil {
			return err
		}
		if err := eng.Start(ctx); err != nil {
			return fmt.Errorf("start at %q: %w", startURL, err)
		}
		defer eng.Stop()

		api := httpAdapter.NewServer(eng, httpAdapter.WithLogger(logger))
		defer api.Close()

		r := chi.NewRouter()
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		r.Mount("/", api.Handler())

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: r,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting voie server", "addr", srv.Addr, "states", len(eng.States()))
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("start shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("voie server stopped gracefully")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("url", "/", "Initial URL to navigate to")
}
