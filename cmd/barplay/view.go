package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	borderCol = lipgloss.Color("#243141")
	dimFg     = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")

	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(dimFg)
)

// chartSize is the number of cells available for the chart: the terminal
// minus border, title, status and help lines.
func (m Model) chartSize() (cols, rows int) {
	cols = m.width - 2
	rows = m.height - 2 - 3
	if m.help.ShowAll {
		rows -= 2
	}
	return max(cols, 10), max(rows, 4)
}

func (m Model) View() string {
	cols, rows := m.chartSize()
	p := newCellPainter(cols, rows, m.canvas.Width, m.canvas.Height)
	m.canvas.Paint(p)

	title := titleStyle.Render("barplay")
	status := statusStyle.Render(fmt.Sprintf("%s  |  %d categories  %d animating",
		m.status, m.categories(), m.chart.Animator().Active()))
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		boxStyle.Render(p.String()),
		status,
		m.help.View(m.keys),
	)
}
