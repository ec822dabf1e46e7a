package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var in prefsInput

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new learning plan",
		Long: "Generate a new learning plan from a topic, pace, learning styles and depth.\n" +
			"Missing values are asked for interactively when running in a terminal.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			defer app.flushNotices(out)

			if err := app.load(ctx); err != nil {
				return err
			}

			if !in.complete() && app.interactive() {
				in = in.withFormDefaults()
				if err := preferencesForm(&in).RunWithContext(ctx); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(out, formatter.Dim("Cancelled."))
						return nil
					}
					return err
				}
			}

			prefs, err := in.preferences()
			if err != nil {
				return err
			}

			generate := func(ctx context.Context) error {
				return app.Manager.GenerateFromPreferences(ctx, prefs)
			}
			if app.interactive() {
				label := fmt.Sprintf("Generating your %s curriculum...", domain.DisplayTopic(prefs.Topic))
				err = runWithSpinner(ctx, cmd.InOrStdin(), cmd.ErrOrStderr(), label, generate)
			} else {
				err = generate(ctx)
			}
			if err != nil {
				return err
			}

			app.flushNotices(out)
			st := app.Manager.Snapshot()
			fmt.Fprintln(out, formatter.FormatCurriculum(curriculumView(st)))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Topic, "topic", "", "What to learn, e.g. web-development")
	cmd.Flags().StringVar(&in.Pace, "pace", "", "slow (7 days), normal (5 days) or fast (3 days)")
	cmd.Flags().StringSliceVar(&in.Styles, "style", nil, "videos, articles or hands-on (repeatable)")
	cmd.Flags().StringVar(&in.Depth, "depth", "", "beginner, intermediate or advanced")

	return cmd
}

func curriculumView(st service.State) formatter.CurriculumView {
	return formatter.CurriculumView{
		Topic:       st.CurrentTopic,
		Preferences: st.Preferences,
		Days:        st.Plan,
		Progress:    domain.NewProgress(len(st.CompletedDays), len(st.Plan)),
	}
}
