package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "new",
		Short:       "Write an empty vocabulary file, replacing any existing one",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipLoadAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", appCtx.path)
			return nil
		},
	}
}
