// Package tui provides the terminal grid editor for timegrid.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/javiermolinar/timegrid/internal/app"
	"github.com/javiermolinar/timegrid/internal/logger"
	"github.com/javiermolinar/timegrid/internal/schedule"
	"github.com/javiermolinar/timegrid/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeSubject      // Typing into the subject field
	ModePrompt       // Typing a /command
	ModeHelp
	ModeConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeSubject:
		return "subject"
	case ModePrompt:
		return "prompt"
	case ModeHelp:
		return "help"
	case ModeConfirm:
		return "confirm"
	default:
		return "normal"
	}
}

// statusTTL is how long a status message stays on screen.
const statusTTL = 3 * time.Second

// Position represents a cursor position in the grid.
type Position struct {
	Day  int // 0=Monday, 6=Sunday
	Slot int
}

// Options configures the editor.
type Options struct {
	Theme  string
	Logger *log.Logger
}

// confirmation is a pending yes/no question.
type confirmation struct {
	message string
	action  func(Model) (Model, tea.Cmd)
}

// Model is the main TUI model.
type Model struct {
	ctrl   *app.Controller
	log    *log.Logger
	styles *Styles

	// snap is the controller state as of the last refresh.
	snap app.Snapshot

	cursor       Position
	mode         Mode
	scrollOffset int

	subject textinput.Model
	prompt  textinput.Model
	confirm *confirmation

	overlay OverlayModel

	width  int
	height int

	statusMsg string
	statusErr bool
}

// New creates a new TUI model over ctrl.
func New(ctrl *app.Controller, opts Options) Model {
	lg := opts.Logger
	if lg == nil {
		lg = logger.Discard()
	}

	t, err := theme.Load(opts.Theme)
	if err != nil {
		lg.Warn("theme not loaded, using mocha", "theme", opts.Theme, "err", err)
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	subjectInput := textinput.New()
	subjectInput.Placeholder = "subject"
	subjectInput.CharLimit = 64
	subjectInput.Prompt = ""

	promptInput := textinput.New()
	promptInput.Placeholder = "/help"
	promptInput.CharLimit = 256
	promptInput.Prompt = ""

	m := Model{
		ctrl:    ctrl,
		log:     lg,
		styles:  styles,
		mode:    ModeNormal,
		subject: subjectInput,
		prompt:  promptInput,
		overlay: NewOverlayModel(),
	}
	m.refresh()
	if a := m.snap.UI.Anchor; a != nil {
		m.cursor = Position{Day: a.Day, Slot: a.Slot}
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the editor and blocks until it quits.
func Run(ctrl *app.Controller, opts Options) error {
	model := New(ctrl, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(Model); ok && fm.mode == ModeSubject {
		// A subject still being typed is committed so it is not lost.
		ctrl.CommitSubject(context.Background(), fm.subject.Value())
	}
	return err
}

// refresh re-reads the controller state and keeps the cursor on the grid.
func (m *Model) refresh() {
	m.snap = m.ctrl.Snapshot()
	m.clampCursor()
}

func (m *Model) clampCursor() {
	slots := m.snap.SlotCount()
	m.cursor.Day = max(0, min(m.cursor.Day, schedule.DaysPerWeek-1))
	m.cursor.Slot = max(0, min(m.cursor.Slot, slots-1))
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	visible := m.visibleRows()
	if visible <= 0 {
		m.scrollOffset = 0
		return
	}
	if m.cursor.Slot < m.scrollOffset {
		m.scrollOffset = m.cursor.Slot
	}
	if m.cursor.Slot >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor.Slot - visible + 1
	}
	maxOffset := max(0, m.snap.SlotCount()-visible)
	m.scrollOffset = max(0, min(m.scrollOffset, maxOffset))
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusErr = false
	return clearStatusCmd()
}

func (m *Model) setError(err error) tea.Cmd {
	m.statusMsg = err.Error()
	m.statusErr = true
	return clearStatusCmd()
}
