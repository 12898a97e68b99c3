package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var meanings bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the entries, numbered from 1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, entry := range appCtx.store.Entries() {
				if meanings {
					fmt.Fprintf(out, "%d. %s: %s\n", i+1, entry.Label(), entry.Meaning)
					continue
				}
				fmt.Fprintf(out, "%d. %s\n", i+1, entry.Label())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&meanings, "meanings", "m", false, "also print the meanings")
	return cmd
}
