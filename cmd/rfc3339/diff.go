package main

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/ngrash/go-rfc3339/rfc3339"
	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff A B",
		Short: "Compare the parsed fields of two timestamps",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rfc3339.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := rfc3339.Parse(args[1])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if diff := cmp.Diff(a, b); diff != "" {
				fmt.Fprintln(w, "timestamps are different: -A +B")
				fmt.Fprintln(w, diff)
			} else {
				fmt.Fprintln(w, "timestamps are identical")
			}
			return nil
		},
	}
}
