package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/avezina/cadence/internal/cli/formatter"
	"github.com/avezina/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Show a day's plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().Format(domain.DateLayout)
			if len(args) == 1 {
				date = args[0]
			}

			actions, err := app.Plans.Plan(context.Background(), date)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatPlan(date, actions))
			return nil
		},
	}
	return cmd
}

func newDatesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dates",
		Short: "List dates that have plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, err := app.Plans.ListDates(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatDates(dates))
			return nil
		},
	}
}
