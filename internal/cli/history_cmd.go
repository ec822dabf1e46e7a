package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/repository"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously generated plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Store == nil {
				return errors.New("history needs a database; none is configured")
			}
			summaries, err := app.Store.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(historyRows(summaries), app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of plans to list (0 for all)")

	return cmd
}

func historyRows(summaries []repository.CurriculumSummary) []formatter.HistoryRow {
	rows := make([]formatter.HistoryRow, 0, len(summaries))
	for _, s := range summaries {
		created, _ := time.Parse(time.RFC3339, s.CreatedAt)
		topic := s.DisplayTopic
		if topic == "" {
			topic = s.Topic
		}
		rows = append(rows, formatter.HistoryRow{
			ID:        s.ID,
			Topic:     topic,
			Pace:      s.Pace,
			Depth:     s.Depth,
			Source:    s.Source,
			Active:    s.Active,
			Completed: s.CompletedDays,
			Total:     s.TotalDays,
			CreatedAt: created,
		})
	}
	return rows
}
