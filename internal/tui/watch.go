// Package tui animates a Drunken Bishop walk in the terminal.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/bishop/internal/bishop"
	"github.com/san-kum/bishop/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

const (
	minSpeed = 1
	maxSpeed = 64
)

type model struct {
	size    bishop.Size
	data    []byte
	opts    bishop.Options
	painter *viz.Painter
	delay   time.Duration

	art    *bishop.Art
	last   *bishop.Step
	gen    int
	pos    int
	speed  int
	paused bool
	result *bishop.Result
	err    error
}

// NewWatchApp returns a model that feeds data into a size field one
// chunk per tick, drawing the field as it fills.
func NewWatchApp(size bishop.Size, data []byte, opts bishop.Options, theme viz.Theme, delay time.Duration) (*model, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := bishop.CheckSize(size.W, size.H); err != nil {
		return nil, err
	}
	m := &model{
		size:    size,
		data:    data,
		opts:    opts,
		painter: viz.NewPainter(nil, theme),
		delay:   delay,
		speed:   minSpeed,
	}
	m.reset()
	return m, nil
}

func (m *model) reset() {
	m.art, _ = bishop.New(m.size.W, m.size.H)
	last := &bishop.Step{Index: -1}
	m.art.AddObserver(bishop.ObserverFunc(func(s bishop.Step) { *last = s }))
	m.last = last
	m.gen++
	m.pos = 0
	m.result = nil
	m.err = nil
}

// tickMsg carries the walk generation it was scheduled for, so ticks
// from before a restart are dropped.
type tickMsg struct{ gen int }

func (m model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m model) Init() tea.Cmd { return m.tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		if msg.gen != m.gen || m.result != nil {
			return m, nil
		}
		if !m.paused {
			m.advance(m.speed)
		}
		if m.result != nil {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
	case "+", "=":
		m.speed = min(m.speed*2, maxSpeed)
	case "-", "_":
		m.speed = max(m.speed/2, minSpeed)
	case "n":
		if m.result == nil {
			m.advance(1)
		}
	case "r":
		m.reset()
		return m, tea.Batch(tea.ClearScreen, m.tick())
	}
	return m, nil
}

// advance feeds up to n bytes and finalizes once the data runs out.
func (m *model) advance(n int) {
	end := min(m.pos+n, len(m.data))
	if err := m.art.Input(m.data[m.pos:end]); err != nil {
		m.err = err
		return
	}
	m.pos = end
	if m.pos == len(m.data) {
		m.result, m.err = m.art.Result()
	}
}

func (m model) field() *bishop.Result {
	if m.result != nil {
		return m.result
	}
	return m.art.Snapshot()
}

func (m model) View() string {
	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("walking")
	switch {
	case m.result != nil:
		statusIcon = cyan.Render("■")
		statusText = cyan.Render("done")
	case m.paused:
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	x, y := m.art.Position()
	info := fmt.Sprintf("step %d  at (%d, %d)", m.art.Steps(), x, y)
	if m.last.Index >= 0 {
		info += fmt.Sprintf("  count %d", m.last.Value)
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s\n", statusIcon, statusText,
		dim.Render(fmt.Sprintf("%s  x%d", info, m.speed))))

	progress := 1.0
	if len(m.data) > 0 {
		progress = float64(m.pos) / float64(len(m.data))
	}
	barWidth := 36
	filled := int(progress * float64(barWidth))
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))
	b.WriteString(fmt.Sprintf("   %s %s\n\n", bar, dim.Render(fmt.Sprintf("%d/%d bytes", m.pos, len(m.data)))))

	art, err := m.painter.Paint(m.field(), m.opts)
	if err == nil {
		for _, line := range strings.Split(strings.TrimSuffix(art, "\n"), "\n") {
			b.WriteString("   " + line + "\n")
		}
	}
	if m.err != nil {
		b.WriteString("\n   " + m.err.Error() + "\n")
	}

	b.WriteString("\n" + dim.Render("   space pause  n step  ±speed  r restart  q quit") + "\n")
	return b.String()
}

// Result returns the finished field, or nil if the walk was left early.
func (m model) Result() *bishop.Result { return m.result }

// RunWatch animates the walk and returns the finished field, if any.
func RunWatch(size bishop.Size, data []byte, opts bishop.Options, theme viz.Theme, delay time.Duration) (*bishop.Result, error) {
	app, err := NewWatchApp(size, data, opts, theme, delay)
	if err != nil {
		return nil, err
	}
	final, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}
	switch fm := final.(type) {
	case model:
		return fm.Result(), nil
	case *model:
		return fm.Result(), nil
	}
	return nil, nil
}
