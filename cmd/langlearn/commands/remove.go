package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <n>",
		Aliases: []string{"rm"},
		Short:   "Delete entry number n",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0], appCtx.store.Len())
			if err != nil {
				return err
			}
			entry, _ := appCtx.store.At(index)
			appCtx.store.Remove(index)

			if err := appCtx.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", entry.Label())
			return nil
		},
	}
}
