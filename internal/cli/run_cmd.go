package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the execution scheduler until interrupted",
		Long: `Run the execution scheduler: every poll interval, load today's plan,
mark each due pending action as executed, and append it to the execution
log. State lives entirely in the plan files, so the loop can be stopped
and restarted at any point without double-executing or losing actions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Println("scheduler running, ctrl-c to stop")
			err := app.Runner.Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
