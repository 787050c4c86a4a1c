package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/conform"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of conform",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "conform version %s\n", conform.Version)
		},
	}
}
