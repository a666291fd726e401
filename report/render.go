package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorTeal  = lipgloss.Color("#20B9B4")
	colorSlate = lipgloss.Color("#2C4A54")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorSlate)
)

// Render writes one bordered table per variant for terminal display.
func Render(w io.Writer, s *Summary) error {
	if s == nil || len(s.Variants) == 0 {
		return fmt.Errorf("no results to report")
	}

	for i, vs := range s.Variants {
		if i > 0 {
			fmt.Fprintln(w)
		}

		rows := make([][]string, 0, len(vs.Rows))
		for _, r := range vs.Rows {
			rows = append(rows, r.cells())
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorTeal)).
			Headers(columns...).
			Rows(rows...).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}

				return cellStyle
			})

		fmt.Fprintln(w, titleStyle.Render(title(vs.Variant)))
		fmt.Fprintln(w, t.Render())
	}

	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(
		"%d trials per size; times in ns; coefficients of variation in %%", s.Trials)))

	return nil
}
