package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "querylang",
		Short:         "evaluate query-lang scripts against a document",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newEvalCmd())
	return cmd
}
