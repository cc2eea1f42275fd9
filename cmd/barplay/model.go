package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/vdobler/barchart"
	"github.com/vdobler/barchart/surface"
)

type keyMap struct {
	Randomize key.Binding
	Append    key.Binding
	Drop      key.Binding
	VGShot    key.Binding
	GGShot    key.Binding
	SVGShot   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Randomize, k.Append, k.Drop, k.VGShot, k.GGShot, k.SVGShot, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Randomize, k.Append, k.Drop},
		{k.VGShot, k.GGShot, k.SVGShot},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Randomize: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new values")),
	Append:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add category")),
	Drop:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "drop category")),
	VGShot:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "png (vg)")),
	GGShot:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "png (gg)")),
	SVGShot:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "svg")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// frameMsg is sent once per frame by tea.Tick.
type frameMsg time.Time

// Model hosts a chart in the bubbletea frame loop.
type Model struct {
	cfg    Config
	log    zerolog.Logger
	canvas *surface.Canvas
	chart  *barchart.Chart
	rnd    *rand.Rand

	// values[s][i] is value i of series s.
	values [][]float64

	keys keyMap
	help help.Model

	width, height int // terminal size
	last          time.Time
	status        string
}

// New returns a model drawing cfg.Categories random values per series.
func New(cfg Config, log zerolog.Logger, rnd *rand.Rand) Model {
	canvas := surface.New(float64(cfg.Width), float64(cfg.Height))
	canvas.SetLogger(log)
	m := Model{
		cfg:    cfg,
		log:    log,
		canvas: canvas,
		chart: barchart.NewChart(canvas,
			barchart.WithSpeed(cfg.Speed),
			barchart.WithLogger(log)),
		rnd:    rnd,
		values: make([][]float64, len(cfg.Series)),
		keys:   keys,
		help:   help.New(),
		width:  80,
		height: 24,
		status: "barplay ready",
	}
	for i := 0; i < cfg.Categories; i++ {
		m.appendCategory()
	}
	m.update()
	return m
}

func (m Model) Init() tea.Cmd { return m.nextFrame() }

func (m Model) nextFrame() tea.Cmd {
	return tea.Tick(m.cfg.Frame(), func(t time.Time) tea.Msg { return frameMsg(t) })
}

// value returns a random value. Every fifth is negative so both sides of
// the baseline get exercised.
func (m *Model) value() float64 {
	v := float64(1 + m.rnd.IntN(100))
	if m.rnd.IntN(5) == 0 {
		v = -v / 2
	}
	return v
}

func (m *Model) appendCategory() {
	for s := range m.values {
		m.values[s] = append(m.values[s], m.value())
	}
}

func (m *Model) dropCategory() bool {
	if len(m.values) == 0 || len(m.values[0]) == 0 {
		return false
	}
	for s := range m.values {
		m.values[s] = m.values[s][:len(m.values[s])-1]
	}
	return true
}

func (m *Model) randomize() {
	for s := range m.values {
		for i := range m.values[s] {
			m.values[s][i] = m.value()
		}
	}
}

// update hands the current values to the chart.
func (m *Model) update() {
	series := make([]barchart.Series, len(m.values))
	fills := barchart.Palette(m.cfg.Series...)
	for s, vals := range m.values {
		series[s] = barchart.Series{
			Name:   fmt.Sprintf("s%d", s),
			Values: vals,
			Fill:   fills[s],
		}
	}
	m.chart.Update(series...)
}

func (m Model) categories() int {
	if len(m.values) == 0 {
		return 0
	}
	return len(m.values[0])
}
