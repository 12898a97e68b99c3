package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/langlearn/internal/editor"
)

// add <language> <word> <meaning>
func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <language> <word> <meaning>",
		Short: "Add an entry",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := editor.NewForm()
			form.Language, form.Word, form.Meaning = args[0], args[1], args[2]

			entry, err := form.Submit(appCtx.store)
			if err != nil {
				return err
			}
			if err := appCtx.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", entry.Label())
			return nil
		},
	}
}
