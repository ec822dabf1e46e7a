package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewRootCmd creates the top-level "pathwise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "pathwise",
		Short:         "Personalized learning plans with progress tracking",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newShowCmd(app),
		newCompleteCmd(app),
		newRestartCmd(app),
		newProgressCmd(app),
		newHistoryCmd(app),
		newDeleteCmd(app),
		newServeCmd(app),
	)
	root.SetGlobalNormalizationFunc(normalizeFlagName)

	return root
}

// normalizeFlagName accepts underscores in place of dashes, and --styles
// for the repeatable --style flag.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	name = strings.ReplaceAll(name, "_", "-")
	if name == "styles" {
		name = "style"
	}
	return pflag.NormalizedName(name)
}
