package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the plan gateway HTTP server",
		Long: "Run the gateway that proxies POST /generate-plan to the configured LLM provider.\n" +
			"Stops gracefully on SIGINT or SIGTERM.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Serve == nil {
				return errors.New("gateway server is not configured")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := app.Serve(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Gateway stopped."))
			return nil
		},
	}
}
