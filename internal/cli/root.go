package cli

import (
	"github.com/avezina/cadence/internal/runner"
	"github.com/avezina/cadence/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services used by CLI commands.
type App struct {
	Plans  service.PlanService
	Runner *runner.Runner

	// IsInteractive reports whether stdin is a terminal; the
	// interactive generate form is only offered when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "cadence" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cadence",
		Short: "Daily social action planner and executor",
	}

	root.AddCommand(
		newGenerateCmd(app),
		newShowCmd(app),
		newDatesCmd(app),
		newRunCmd(app),
		newActionCmd(app),
		newPlanCmd(app),
	)

	return root
}
