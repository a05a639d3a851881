package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/timegrid/internal/app"
	"github.com/javiermolinar/timegrid/internal/tui/commands"
)

// ErrLocked is shown when an edit is ignored because the editor is locked.
var ErrLocked = errors.New("editor is locked (L to unlock)")

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.subject.Width = max(1, m.width-14)
		m.prompt.Width = max(1, m.width-6)
		m.ensureCursorVisible()
		return m, nil

	case commands.CopiedMsg:
		return m, m.setStatus(fmt.Sprintf("Copied entry list (%d bytes)", msg.Bytes))

	case commands.ExportedMsg:
		m.log.Info("timetable exported", "path", msg.Path)
		return m, m.setStatus("Exported to " + msg.Path)

	case commands.StatusMsgCmd:
		return m, m.setStatus(msg.Msg)

	case commands.ErrMsg:
		m.log.Error("command failed", "err", msg.Err)
		return m, m.setError(msg.Err)

	case commands.ClearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil
	}

	return m, nil
}

// apply refreshes the model after a controller call and reports its
// outcome on the status line. okMsg is shown on success when not empty.
func (m Model) apply(res app.Result, err error, okMsg string) (Model, tea.Cmd) {
	m.refresh()
	switch {
	case err != nil:
		m.log.Debug("operation failed", "err", err)
		return m, m.setError(err)
	case res.Suppressed:
		return m, m.setError(ErrLocked)
	case res.Warning != nil:
		m.log.Error("state not saved", "err", res.Warning)
		return m, m.setError(fmt.Errorf("not saved: %w", res.Warning))
	case res.Blocked > 0:
		return m, m.setStatus(fmt.Sprintf("Painted %d, %d blocked by the other plan", res.Painted, res.Blocked))
	case okMsg != "":
		return m, m.setStatus(okMsg)
	}
	return m, nil
}

func clearStatusCmd() tea.Cmd {
	return commands.ClearStatusAfter(statusTTL)
}
