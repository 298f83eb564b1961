package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avezina/cadence/internal/contract"
	"github.com/avezina/cadence/internal/domain"
)

// contentPreviewLen keeps the table readable on a normal terminal.
const contentPreviewLen = 48

// FormatPlan renders a day's actions as a table.
func FormatPlan(date string, actions []domain.Action) string {
	var b strings.Builder
	b.WriteString(Header("plan " + date))
	b.WriteString("\n")

	if len(actions) == 0 {
		b.WriteString(StyleDim.Render("no plan for this date"))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(actions))
	for i, a := range actions {
		rows = append(rows, []string{
			strconv.Itoa(i),
			a.Time.Format("15:04:05"),
			string(a.Type),
			a.Account,
			preview(a.Content),
			StateIndicator(a.Executed),
		})
	}

	b.WriteString(RenderTable(
		[]string{"#", "TIME", "TYPE", "ACCOUNT", "CONTENT", "STATE"},
		rows,
	))
	return b.String()
}

// FormatDates renders the list of dates that have plans.
func FormatDates(dates []string) string {
	if len(dates) == 0 {
		return StyleDim.Render("no plans yet") + "\n"
	}
	var b strings.Builder
	for _, d := range dates {
		b.WriteString(d)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatGenerateResult summarizes a generation run.
func FormatGenerateResult(r *contract.GenerateResult) string {
	if r.AlreadyExists {
		return fmt.Sprintf("plan for %s already exists, nothing generated\n", r.Date)
	}
	if r.Created == 0 {
		return StyleYellow.Render(fmt.Sprintf("no actions generated for %s, plan not saved", r.Date)) + "\n"
	}
	out := StyleGreen.Render(fmt.Sprintf("generated %d actions for %s", r.Created, r.Date))
	if r.Skipped > 0 {
		out += StyleDim.Render(fmt.Sprintf(" (%d requested actions dropped)", r.Skipped))
	}
	return out + "\n"
}

func preview(content string) string {
	if content == "" {
		return StyleDim.Render("—")
	}
	runes := []rune(content)
	if len(runes) > contentPreviewLen {
		return string(runes[:contentPreviewLen]) + "…"
	}
	return content
}
