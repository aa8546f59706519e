package main

import (
	"github.com/spf13/cobra"

	"nixlint/internal/project"
)

func newDumpCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the default nixlint.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return project.Dump(cmd.OutOrStdout(), project.Default())
		},
	}
}
