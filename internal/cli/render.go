package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"budget/internal/core"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	okStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	overStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRed)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 44
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
// A row holding the single cell "---" renders as a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(" " + padRight(h, widths[i]) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// Right-align numeric columns (all except first)
			var padded string
			if i == 0 {
				padded = " " + padRight(cell, widths[i]) + " "
			} else {
				padded = " " + padLeft(cell, widths[i]) + " "
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// RenderSummary renders a profile summary as a title, a totals table and a
// per-category table with each category's share of spending.
func RenderSummary(s core.Summary, monthlyBudget core.Money, currency string) string {
	var b strings.Builder

	b.WriteString(RenderTitle(fmt.Sprintf("BUDGET  %s", s.Name)))
	b.WriteString("\n")

	remaining := FormatMoney(s.Remaining, currency)
	if s.Overspent() {
		remaining = overStyle.Render(remaining + " over")
	} else {
		remaining = okStyle.Render(remaining)
	}

	b.WriteString(RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Monthly Budget", FormatMoney(monthlyBudget, currency)},
			{"Total Expenses", FormatMoney(s.Total, currency)},
			{"Expense Count", FormatNumber(int64(s.Count))},
			{"Budget Used", FormatPercent(Share(s.Total, monthlyBudget))},
			{"---"},
			{"Remaining Budget", remaining},
		},
	}))

	if len(s.ByCategory) == 0 {
		b.WriteString(mutedStyle.Render("  No expenses recorded yet."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(s.ByCategory))
	for _, c := range s.ByCategory {
		name := c.Name
		if name == "" {
			name = "(none)"
		}
		rows = append(rows, []string{
			name,
			FormatMoney(c.Amount, currency),
			FormatPercent(Share(c.Amount, s.Total)),
		})
	}
	b.WriteString(RenderTable(Table{
		Title:   "Expenses by Category",
		Headers: []string{"Category", "Total", "Share"},
		Rows:    rows,
	}))

	return b.String()
}

// RenderWarning renders a one-line warning.
func RenderWarning(msg string) string {
	return warnStyle.Render(msg)
}

func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

func padLeft(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}
