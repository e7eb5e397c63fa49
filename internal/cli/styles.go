package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary  = lipgloss.Color("#0984e3")
	colorSuccess  = lipgloss.Color("#00b894")
	colorAccent   = lipgloss.Color("#6c5ce7")
	colorDeadline = lipgloss.Color("#00cec9")
	colorWarning  = lipgloss.Color("#e17055")
	colorError    = lipgloss.Color("#d63031")
	colorMuted    = lipgloss.Color("#dfe6e9")
)

type styles struct {
	title    lipgloss.Style
	heading  lipgloss.Style
	success  lipgloss.Style
	deadline lipgloss.Style
	warning  lipgloss.Style
	failure  lipgloss.Style
	muted    lipgloss.Style
	header   lipgloss.Style
}

// newStyles binds the palette to output, so colors are dropped when output is
// not a terminal.
func newStyles(output io.Writer) styles {
	renderer := lipgloss.NewRenderer(output)
	return styles{
		title:    renderer.NewStyle().Bold(true).Foreground(colorPrimary),
		heading:  renderer.NewStyle().Bold(true).Foreground(colorAccent),
		success:  renderer.NewStyle().Foreground(colorSuccess),
		deadline: renderer.NewStyle().Bold(true).Foreground(colorDeadline),
		warning:  renderer.NewStyle().Foreground(colorWarning),
		failure:  renderer.NewStyle().Foreground(colorError),
		muted:    renderer.NewStyle().Foreground(colorMuted),
		header:   renderer.NewStyle().Bold(true),
	}
}

// renderTable lays rows out in left-aligned columns padded to the widest cell.
func renderTable(theme styles, headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for index, header := range headers {
		widths[index] = lipgloss.Width(header)
	}
	for _, row := range rows {
		for index, cell := range row {
			if index < len(widths) && lipgloss.Width(cell) > widths[index] {
				widths[index] = lipgloss.Width(cell)
			}
		}
	}

	var builder strings.Builder
	builder.WriteString(theme.header.Render(joinCells(headers, widths)))
	builder.WriteString("\n")
	for _, row := range rows {
		builder.WriteString(joinCells(row, widths))
		builder.WriteString("\n")
	}
	return builder.String()
}

func joinCells(cells []string, widths []int) string {
	padded := make([]string, 0, len(cells))
	for index, cell := range cells {
		if index == len(cells)-1 || index >= len(widths) {
			padded = append(padded, cell)
			continue
		}
		padded = append(padded, cell+strings.Repeat(" ", widths[index]-lipgloss.Width(cell)))
	}
	return "  " + strings.Join(padded, "  ")
}
