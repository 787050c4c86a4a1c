package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	httpAdapter "github.com/aretw0/conform/pkg/adapters/http"
	"github.com/aretw0/conform/pkg/observability"
	"github.com/aretw0/conform/pkg/schema"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP validation server",
		Long:  `Serves POST /validate for the loaded schema, plus /schema, /healthz and /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	cmd.Flags().Int64("max-body", httpAdapter.DefaultMaxBodyBytes, "Maximum request body size in bytes")
	return cmd
}

func runServe(cmd *cobra.Command) error {
	port, _ := cmd.Flags().GetString("port")
	maxBody, _ := cmd.Flags().GetInt64("max-body")

	logger, err := loggerFromFlags(cmd)
	if err != nil {
		return err
	}
	root, err := loadSchema(cmd)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	v := schema.NewValidator(root, schema.WithLogger(logger), metrics.Option())
	srv := &http.Server{
		Addr: ":" + port,
		Handler: httpAdapter.NewHandler(v,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(reg),
			httpAdapter.WithMaxBodyBytes(maxBody),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting conform server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("shutting down")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown did not complete", "error", err)
			return srv.Close()
		}
		return nil
	}
}
