package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func TestView_Layout(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	m, _ := newTestModel(t)
	m = typeSubject(t, m, "수학")
	m = press(t, m, "space", "j", "space")

	out := m.View()
	lines := strings.Split(out, "\n")
	if len(lines) != m.height {
		t.Errorf("view has %d lines, want %d", len(lines), m.height)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != m.width {
			t.Errorf("line %d width = %d, want %d", i, w, m.width)
			break
		}
	}

	plain := ansi.Strip(out)
	for _, want := range []string{"Mon", "Sun", "09:00", "21:00", "수학", "Semester 1", "plan regular", "subject> 수학"} {
		if !strings.Contains(plain, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_SmallTerminal(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 1, Height: 1})
	if got := m.View(); got != "Terminal too small" {
		t.Errorf("view = %q", got)
	}

	m.width, m.height = 0, 0
	if got := m.View(); got != "Loading..." {
		t.Errorf("view = %q", got)
	}
}

func TestView_StatusBarShowsLock(t *testing.T) {
	m, _ := newTestModel(t)
	if strings.Contains(ansi.Strip(m.statusBar()), "LOCKED") {
		t.Error("unlocked editor shows LOCKED")
	}
	m = press(t, m, "L")
	if !strings.Contains(ansi.Strip(m.statusBar()), "LOCKED") {
		t.Error("locked editor should show LOCKED")
	}
}

func TestView_HelpDialog(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	m, _ := newTestModel(t)
	m = press(t, m, "?")

	plain := ansi.Strip(m.View())
	for _, want := range []string{"Keys", "cycle view", "lock or unlock"} {
		if !strings.Contains(plain, want) {
			t.Errorf("help dialog missing %q", want)
		}
	}
}

func TestView_ConfirmDialog(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = submitPrompt(t, m, "/new Fall")
	m, _ = submitPrompt(t, m, "/delete")

	plain := ansi.Strip(m.View())
	if !strings.Contains(plain, `Delete profile "Fall"`) {
		t.Errorf("confirm dialog missing question:\n%s", plain)
	}
}

func TestCellView(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	m, _ := newTestModel(t)
	m = typeSubject(t, m, "수학")
	m = press(t, m, "space", "j", "space", "o", "p")
	m = typeSubject(t, m, "과학")
	m = press(t, m, "l", "space", "esc", "h", "k", "space", "esc")
	// Regular: Mon 0-1 수학. Naesin: Mon 0 과학, Tue 1 과학.
	m.cursor = Position{Day: 6, Slot: 12}

	text, _ := m.cellView(0, 0)
	if text != "!수학/과학" {
		t.Errorf("conflict label = %q", text)
	}
	text, _ = m.cellView(0, 1)
	if text != "" {
		t.Errorf("continuation should be blank, got %q", text)
	}
	text, _ = m.cellView(1, 1)
	if text != "과학" {
		t.Errorf("naesin-only label = %q", text)
	}
	text, _ = m.cellView(3, 3)
	if text != "" {
		t.Errorf("empty cell = %q", text)
	}

	_, style := m.cellView(6, 12)
	if style.GetBackground() != m.styles.CursorStyle.GetBackground() {
		t.Error("cursor on an empty cell uses the cursor style")
	}
	m.cursor = Position{Day: 0, Slot: 1}
	_, style = m.cellView(0, 1)
	if !style.GetReverse() {
		t.Error("cursor on a painted cell reverses its colours")
	}
}
