package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ngrash/go-rfc3339/internal/ingest"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	var (
		fail    bool
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "scan [FILE]",
		Short: "Parse one timestamp per line",
		Long: `Scan parses every line of FILE, or standard input if FILE is omitted or "-",
and writes one report line per non-blank input line.

Examples:
  # Check the timestamps extracted from a log
  cut -f1 app.log | rfc3339 scan --fail

  # Report on a file and print a summary
  rfc3339 scan --summary timestamps.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			stats, err := ingest.Scan(r, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if summary {
				if _, err := stats.WriteTo(cmd.ErrOrStderr()); err != nil {
					return err
				}
			}
			if fail && stats.Failed > 0 {
				return fmt.Errorf("%d of %d lines failed to parse", stats.Failed, stats.Lines-stats.Blank)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fail, "fail", false, "Exit with a non-zero status if any line fails to parse")
	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "Print a summary to standard error")
	return cmd
}
