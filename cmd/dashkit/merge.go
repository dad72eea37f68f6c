package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dashkit/internal/classmerge"
)

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "merge <classes>...",
		Short:   "Merge class lists so later classes win each conflict",
		Example: `  dashkit merge "px-2 py-1 bg-red-500" "px-4 bg-blue-500"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), classmerge.Merge(args...))
			return nil
		},
	}
}
