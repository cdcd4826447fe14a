package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/olivier-w/mercury/internal/frame"
	"github.com/olivier-w/mercury/internal/util"
)

const (
	canvasTop  = 2 // header line + blank
	canvasLeft = 2
	cursorStep = 0.1
	traceRows  = 6
)

// Model is the Bubbletea model for the terminal preview.
type Model struct {
	driver *frame.Driver
	clock  *frame.Clock
	log    zerolog.Logger

	keys keyMap
	help help.Model

	canvas *canvas
	trace  *trace
	last   frame.Frame

	width, height int
	cursorX       float32
	cursorY       float32
	fps           float64
	mode          ViewMode
	paused        bool
	showTrace     bool
	quitting      bool
}

// New creates a preview that steps d once per tick at the given rate.
func New(d *frame.Driver, fps int, log zerolog.Logger) Model {
	return Model{
		driver: d,
		clock:  frame.NewClock(fps),
		log:    log,
		keys:   defaultKeys(),
		help:   help.New(),
		canvas: newCanvas(detectProfile()),
		trace:  &trace{},
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.clock.Nominal()), tea.SetWindowTitle("mercury"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		x, y, ok := m.cellToSurface(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.cursorX, m.cursorY = x, y
			m.driver.Click(x, y)
		case msg.Action == tea.MouseActionMotion:
			m.cursorX, m.cursorY = x, y
			m.driver.PointerMove(x, y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		dt := m.clock.Delta(time.Time(msg))
		if m.paused {
			return m, tickCmd(m.clock.Nominal())
		}
		m.last = m.driver.Step(dt)
		if dt > 0 {
			inst := 1 / dt.Seconds()
			if m.fps == 0 {
				m.fps = inst
			} else {
				m.fps = 0.9*m.fps + 0.1*inst
			}
		}
		m.trace.push(float64(m.cursorX), float64(m.last.Pointer[0]))
		return m, tickCmd(m.clock.Nominal())
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.log.Info().Dur("elapsed", m.driver.Elapsed()).Msg("preview closed")
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Shape):
		on := m.driver.ToggleShape()
		m.log.Debug().Bool("shape", on).Msg("shape toggled")
	case key.Matches(msg, m.keys.Reset):
		m.driver.Reset()
		m.trace.reset()
		m.cursorX, m.cursorY = 0, 0
	case key.Matches(msg, m.keys.View):
		m.mode = m.mode.Next()
	case key.Matches(msg, m.keys.Trace):
		m.showTrace = !m.showTrace
	case key.Matches(msg, m.keys.Splash):
		m.driver.Click(m.cursorX, m.cursorY)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-cursorStep, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(cursorStep, 0)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, cursorStep)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, -cursorStep)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) moveCursor(dx, dy float32) {
	m.cursorX = clampUnit(m.cursorX + dx)
	m.cursorY = clampUnit(m.cursorY + dy)
	m.driver.PointerMove(m.cursorX, m.cursorY)
}

func clampUnit(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// canvasSize is the number of cells available to the surface.
func (m Model) canvasSize() (cols, rows int) {
	cols = m.width - 2*canvasLeft
	reserved := canvasTop + 4 // blank, status, blank, help
	if m.help.ShowAll {
		reserved += 3
	}
	if m.showTrace {
		reserved += traceRows + 2
	}
	rows = m.height - reserved
	return max(cols, 10), max(rows, 4)
}

// cellToSurface maps a terminal cell to surface coordinates in [-1, 1]².
func (m Model) cellToSurface(x, y int) (float32, float32, bool) {
	cols, rows := m.canvasSize()
	col, row := x-canvasLeft, y-canvasTop
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return 0, 0, false
	}
	sx := (float32(col)+0.5)/float32(cols)*2 - 1
	sy := 1 - (float32(row)+0.5)/float32(rows)*2
	return sx, sy, true
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	cols, rows := m.canvasSize()
	indent := spaces(canvasLeft)

	var b strings.Builder
	b.WriteString(indent + headerStyle.Render("mercury") + "\n\n")

	body := m.canvas.render(m.driver.Ripples(), m.last, cols, rows, m.mode)
	for line := range strings.SplitSeq(body, "\n") {
		b.WriteString(indent + line + "\n")
	}

	b.WriteString("\n" + indent + m.statusLine(cols) + "\n")
	if m.showTrace {
		graph := m.trace.render(cols-8, traceRows)
		b.WriteString("\n")
		for line := range strings.SplitSeq(traceStyle.Render(graph), "\n") {
			b.WriteString(indent + line + "\n")
		}
	}
	b.WriteString("\n" + indent + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m Model) statusLine(width int) string {
	state := "▶ running"
	if m.paused {
		state = pausedStyle.Render("❚❚ paused")
	}
	shape := "free"
	if m.driver.Shape() {
		shape = "shape"
	}
	left := fmt.Sprintf("%s  %s  %s  %s", state, util.FormatElapsed(m.last.Elapsed), m.mode, shape)
	right := fmt.Sprintf("ripples %s  %s", renderSlots(m.last.Ripples), renderFPS(m.fps))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return statusStyle.Render(left) + spaces(gap) + statusStyle.Render(right)
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
