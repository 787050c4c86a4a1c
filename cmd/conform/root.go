package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/conform/internal/logging"
	"github.com/aretw0/conform/pkg/document"
	"github.com/aretw0/conform/pkg/registry"
	"github.com/aretw0/conform/pkg/schema"
)

// newRootCmd builds the command tree. Each call returns independent
// commands so tests can run them in isolation.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "conform",
		Short:         "conform validates JSON documents against declarative schemas",
		Long:          `conform checks JSON data against a YAML or JSON schema document and reports the first violation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("schema", "s", "schema.yaml", "Path to the schema document")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	rootCmd.AddCommand(newValidateCmd(), newServeCmd(), newVersionCmd())
	return rootCmd
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loggerFromFlags(cmd *cobra.Command) (*slog.Logger, error) {
	levelFlag, _ := cmd.Flags().GetString("log-level")
	asJSON, _ := cmd.Flags().GetBool("log-json")

	level, err := logging.ParseLevel(levelFlag)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(cmd.ErrOrStderr(), level, asJSON), nil
}

func loadSchema(cmd *cobra.Command) (*schema.Object, error) {
	path, _ := cmd.Flags().GetString("schema")
	return document.Load(path, registry.Default())
}
