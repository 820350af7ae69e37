package main

import (
	"fmt"
	"io"

	"github.com/ngrash/go-rfc3339/internal/ingest"
	"github.com/ngrash/go-rfc3339/rfc3339"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse TIMESTAMP...",
		Short: "Print the fields of each timestamp",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			failed := 0
			for _, arg := range args {
				dt, err := rfc3339.Parse(arg)
				if err != nil {
					fmt.Fprintln(w, err)
					fmt.Fprintln(w)
					failed++
					continue
				}
				printRecord(w, arg, ingest.Describe(dt))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d timestamps failed to parse", failed, len(args))
			}
			return nil
		},
	}
}

func printRecord(w io.Writer, input string, r ingest.Record) {
	fmt.Fprintln(w, input)
	fmt.Fprintln(w, "  granularity =", r.Granularity)
	fmt.Fprintln(w, "  year =", r.Year)
	printField(w, "month", r.Month)
	printField(w, "day", r.Day)
	printField(w, "hour", r.Hour)
	printField(w, "minute", r.Minute)
	printField(w, "second", r.Second)
	if r.Nanosecond != nil {
		fmt.Fprintf(w, "  nanosecond = %d (%d digits)\n", *r.Nanosecond, r.FractionDigits)
	}
	if r.Offset != "" {
		fmt.Fprintln(w, "  offset =", r.Offset)
	}
	printField(w, "unix", r.Unix)
	fmt.Fprintln(w)
}

func printField[T int | int64](w io.Writer, name string, v *T) {
	if v == nil {
		return
	}
	fmt.Fprintf(w, "  %s = %d\n", name, *v)
}
