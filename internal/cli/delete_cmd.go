package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/repository"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/spf13/cobra"
)

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a past plan from history",
		Long: "Delete a past plan. The id may be the short form shown by `pathwise history`.\n" +
			"The active plan cannot be deleted.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Store == nil {
				return errors.New("delete needs a database; none is configured")
			}
			ctx := cmd.Context()

			summaries, err := app.Store.History(ctx, 0)
			if err != nil {
				return err
			}
			id, err := resolveCurriculumID(summaries, args[0])
			if err != nil {
				return err
			}

			deleted, err := app.Store.Delete(ctx, id)
			if errors.Is(err, service.ErrActiveCurriculum) {
				return fmt.Errorf("%w: generate a new plan before deleting this one", err)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatNotice(false,
				fmt.Sprintf("Deleted %s curriculum %s.", deleted.DisplayTopic, formatter.TruncID(deleted.ID))))
			return nil
		},
	}
}

// resolveCurriculumID matches a full id or a unique id prefix.
func resolveCurriculumID(summaries []repository.CurriculumSummary, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty curriculum id: %w", domain.ErrValidation)
	}
	var matches []string
	for _, s := range summaries {
		if s.ID == ref {
			return s.ID, nil
		}
		if strings.HasPrefix(s.ID, ref) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no curriculum matches %q: %w", ref, domain.ErrValidation)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q matches %d curricula, use more characters: %w", ref, len(matches), domain.ErrValidation)
	}
}
