package commands

import (
	"github.com/spf13/cobra"

	"github.com/ytget/langlearn/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit the vocabulary in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(appCtx.store, appCtx.path, appCtx.cfg.Policy())
		},
	}
}
