package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/langlearn/internal/editor"
)

// update <n> <language> <word> <meaning>
func updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <n> <language> <word> <meaning>",
		Short: "Replace entry number n",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0], appCtx.store.Len())
			if err != nil {
				return err
			}
			current, _ := appCtx.store.At(index)

			form := editor.NewForm()
			form.Select(index, current)
			form.Language, form.Word, form.Meaning = args[1], args[2], args[3]

			entry, err := form.Submit(appCtx.store)
			if err != nil {
				return err
			}
			if err := appCtx.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", entry.Label())
			return nil
		},
	}
}
