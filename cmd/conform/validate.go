package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/conform/pkg/schema"
)

// errInvalid signals that at least one input failed; details are already printed.
var errInvalid = errors.New("validation failed")

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate JSON files against the schema",
		Long:  `Validates each JSON file (or stdin when no file is given) and prints the first violation per input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args)
		},
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger, err := loggerFromFlags(cmd)
	if err != nil {
		return err
	}
	root, err := loadSchema(cmd)
	if err != nil {
		return err
	}
	v := schema.NewValidator(root, schema.WithLogger(logger))
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		if err := v.ValidateJSON(text); err != nil {
			fmt.Fprintf(out, "stdin: %v\n", err)
			return errInvalid
		}
		fmt.Fprintln(out, "stdin: valid")
		return nil
	}

	failed := 0
	for _, path := range args {
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := v.ValidateJSON(text); err != nil {
			failed++
			fmt.Fprintf(out, "%s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "%s: valid\n", path)
	}

	logger.Info("validation finished", "inputs", len(args), "failed", failed)
	if failed > 0 {
		return errInvalid
	}
	return nil
}
