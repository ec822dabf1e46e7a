package cli

import (
	"fmt"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show completion progress for the active plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.requirePlan(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Bold(st.CurrentTopic))
			fmt.Fprintln(out, formatter.FormatProgress(app.Manager.Progress()))
			if app.Manager.IsComplete() {
				fmt.Fprintln(out, formatter.FormatCompletionBanner(st.CurrentTopic))
			}
			return nil
		},
	}
}
