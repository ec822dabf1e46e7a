package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/spf13/cobra"
)

func newCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "complete <day>",
		Aliases: []string{"toggle"},
		Short:   "Mark a day complete, or incomplete again if it already is",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			defer app.flushNotices(out)

			dayNumber, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q: %w", args[0], domain.ErrValidation)
			}

			st, err := app.requirePlan(ctx)
			if err != nil {
				return err
			}
			if _, err := findDay(st.Plan, dayNumber); err != nil {
				return err
			}
			wasComplete := app.Manager.IsComplete()

			if err := app.Manager.ToggleDayComplete(ctx, dayNumber); err != nil {
				return err
			}

			app.flushNotices(out)
			after := app.Manager.Snapshot()
			d, _ := findDay(after.Plan, dayNumber)
			if !d.Completed {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Day %d marked as not completed.", dayNumber)))
			}
			fmt.Fprintln(out, formatter.FormatProgress(app.Manager.Progress()))
			if !wasComplete && app.Manager.IsComplete() {
				fmt.Fprintln(out, formatter.FormatCompletionBanner(after.CurrentTopic))
			}
			return nil
		},
	}
}

// findDay returns the day with dayNumber or a validation error naming the
// plan's range.
func findDay(days []domain.DayPlan, dayNumber int) (domain.DayPlan, error) {
	idx := domain.FindDay(days, dayNumber)
	if idx < 0 {
		return domain.DayPlan{}, fmt.Errorf("day %d is not in the plan (1-%d): %w", dayNumber, len(days), domain.ErrValidation)
	}
	return days[idx], nil
}
