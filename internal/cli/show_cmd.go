package cli

import (
	"fmt"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var day int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active learning plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.requirePlan(cmd.Context())
			if err != nil {
				return err
			}

			if day > 0 {
				d, err := findDay(st.Plan, day)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDay(d))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCurriculum(curriculumView(st)))
			return nil
		},
	}

	cmd.Flags().IntVar(&day, "day", 0, "Show a single day")

	return cmd
}
