package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avezina/cadence/internal/cli/formatter"
	"github.com/avezina/cadence/internal/contract"
	"github.com/avezina/cadence/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var date string
	var counts []string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a day's action plan",
		Long: `Generate a day's action plan from per-type counts.

Counts are given as type=N pairs, e.g.:

  cadence generate --date 2025-04-12 --count create_comment=5 --count post_post=1

Generation is idempotent: if a plan already exists for the date, nothing
is changed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format(domain.DateLayout)
			}

			raw := make(map[string]string)
			for _, pair := range counts {
				name, value, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("invalid count %q, expected type=N", pair)
				}
				raw[name] = value
			}

			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("interactive mode requires a terminal")
				}
				if err := promptGenerateForm(&date, raw); err != nil {
					return err
				}
			}

			req := contract.NewGenerateRequest(date, raw)
			resp, err := app.Plans.Generate(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatGenerateResult(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Plan date (YYYY-MM-DD, default today)")
	cmd.Flags().StringArrayVar(&counts, "count", nil, "Requested actions as type=N (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the date and counts through a form")

	return cmd
}

// promptGenerateForm collects the date and per-type counts through a
// terminal form, pre-filled from any flags already given.
func promptGenerateForm(date *string, raw map[string]string) error {
	fields := []huh.Field{
		huh.NewInput().
			Title("Plan date").
			Description("YYYY-MM-DD").
			Value(date).
			Validate(func(s string) error {
				if _, err := time.ParseInLocation(domain.DateLayout, s, time.Local); err != nil {
					return fmt.Errorf("expected YYYY-MM-DD")
				}
				return nil
			}),
	}

	values := make([]string, len(domain.AllActionTypes))
	for i, t := range domain.AllActionTypes {
		values[i] = raw[string(t)]
		if values[i] == "" {
			values[i] = "0"
		}
		fields = append(fields, huh.NewInput().
			Title(t.Label()).
			Value(&values[i]))
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return err
	}

	for i, t := range domain.AllActionTypes {
		raw[string(t)] = values[i]
	}
	return nil
}
