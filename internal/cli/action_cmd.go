package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/avezina/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newActionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "action",
		Short: "Manually add, edit, delete, or toggle single actions",
	}

	cmd.AddCommand(
		newActionAddCmd(app),
		newActionEditCmd(app),
		newActionDeleteCmd(app),
		newActionToggleCmd(app),
	)

	return cmd
}

// actionFlags registers the fields shared by add and edit.
func actionFlags(cmd *cobra.Command, a *actionInput) {
	cmd.Flags().StringVar(&a.timeStr, "time", "", `Scheduled time ("YYYY-MM-DD HH:MM:SS")`)
	cmd.Flags().StringVar(&a.typeStr, "type", "", "Action type, e.g. create_comment")
	cmd.Flags().StringVar(&a.account, "account", "", "Target account handle")
	cmd.Flags().StringVar(&a.link, "link", "", "Target URL")
	cmd.Flags().StringVar(&a.content, "content", "", "Text content (omit for likes)")
	cmd.MarkFlagRequired("time")
	cmd.MarkFlagRequired("type")
}

type actionInput struct {
	timeStr string
	typeStr string
	account string
	link    string
	content string
}

func (in actionInput) toAction() (domain.Action, error) {
	at, err := time.ParseInLocation(domain.TimeLayout, in.timeStr, time.Local)
	if err != nil {
		return domain.Action{}, fmt.Errorf("invalid time %q, expected %q: %w", in.timeStr, domain.TimeLayout, err)
	}
	if !domain.ValidActionTypes[in.typeStr] {
		return domain.Action{}, fmt.Errorf("unknown action type %q", in.typeStr)
	}
	return domain.Action{
		Time:    domain.NewActionTime(at),
		Type:    domain.ActionType(in.typeStr),
		Account: in.account,
		Link:    in.link,
		Content: in.content,
	}, nil
}

func newActionAddCmd(app *App) *cobra.Command {
	var in actionInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a hand-written action to its day's plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := in.toAction()
			if err != nil {
				return err
			}
			date := action.Date()
			if err := app.Plans.AddAction(context.Background(), date, action); err != nil {
				return err
			}
			fmt.Printf("added %s action to %s\n", action.Type.Label(), date)
			return nil
		},
	}

	actionFlags(cmd, &in)
	return cmd
}

func newActionEditCmd(app *App) *cobra.Command {
	var in actionInput

	cmd := &cobra.Command{
		Use:   "edit <date> <index>",
		Short: "Replace an action in place, keeping its executed flag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			action, err := in.toAction()
			if err != nil {
				return err
			}
			if err := app.Plans.UpdateAction(context.Background(), args[0], index, action); err != nil {
				return err
			}
			fmt.Printf("updated action %d in %s\n", index, args[0])
			return nil
		},
	}

	actionFlags(cmd, &in)
	return cmd
}

func newActionDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <date> <index>",
		Short: "Remove an action from a day's plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			if err := app.Plans.DeleteAction(context.Background(), args[0], index); err != nil {
				return err
			}
			fmt.Printf("deleted action %d from %s\n", index, args[0])
			return nil
		},
	}
}

func newActionToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <date> <index>",
		Short: "Flip an action's executed flag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			executed, err := app.Plans.ToggleExecuted(context.Background(), args[0], index)
			if err != nil {
				return err
			}
			state := "pending"
			if executed {
				state = "executed"
			}
			fmt.Printf("action %d in %s is now %s\n", index, args[0], state)
			return nil
		},
	}
}

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage whole plan files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <date>",
		Short: "Delete a day's plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plans.DeletePlan(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted plan for %s\n", args[0])
			return nil
		},
	})

	return cmd
}

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("invalid action index %q", s)
	}
	return index, nil
}
