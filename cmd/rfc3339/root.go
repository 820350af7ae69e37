package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rfc3339",
		Short: "Parse RFC 3339 timestamps",
		Long: `rfc3339 parses RFC 3339 timestamps and their ISO 8601 date prefixes
(YYYY, YYYY-MM, YYYY-MM-DD) and reports the fields found in each.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newParseCmd(),
		newScanCmd(),
		newDiffCmd(),
		newServeCmd(),
	)
	return cmd
}
