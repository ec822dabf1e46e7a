package cli

import (
	"fmt"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRestartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Clear all progress and start the plan over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			defer app.flushNotices(out)

			if _, err := app.requirePlan(ctx); err != nil {
				return err
			}
			if err := app.Manager.Restart(ctx); err != nil {
				return err
			}

			app.flushNotices(out)
			fmt.Fprintln(out, formatter.FormatProgress(app.Manager.Progress()))
			return nil
		},
	}
}
