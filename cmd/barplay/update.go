package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// maxFrame bounds the time a single frame may advance the animations, so
// a stalled terminal does not make everything jump to its end.
const maxFrame = 250 * time.Millisecond

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case frameMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			dt := now.Sub(m.last)
			if dt > maxFrame {
				dt = maxFrame
			}
			m.chart.Tick(dt)
		}
		m.last = now
		return m, m.nextFrame()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Randomize):
			m.randomize()
			m.update()
			m.status = "new values"
		case key.Matches(msg, m.keys.Append):
			m.appendCategory()
			m.update()
			m.status = fmt.Sprintf("categories: %d", m.categories())
		case key.Matches(msg, m.keys.Drop):
			if m.dropCategory() {
				m.update()
				m.status = fmt.Sprintf("categories: %d", m.categories())
			} else {
				m.status = "nothing to drop"
			}
		case key.Matches(msg, m.keys.VGShot):
			m.status = m.snapshot(vgSnapshot)
		case key.Matches(msg, m.keys.GGShot):
			m.status = m.snapshot(ggSnapshot)
		case key.Matches(msg, m.keys.SVGShot):
			m.status = m.snapshot(svgExport)
		}
	}
	return m, nil
}
