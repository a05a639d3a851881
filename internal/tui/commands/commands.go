// Package commands provides grid editor command constructors and message
// types for work that leaves the process: clipboard and file export.
package commands

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/timegrid/internal/export"
)

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// CopiedMsg is sent after the entry list was copied to the clipboard.
type CopiedMsg struct {
	Bytes int
}

// ExportedMsg is sent after the timetable was written to Path.
type ExportedMsg struct {
	Path string
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// CopyText copies text to the system clipboard.
func CopyText(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return CopiedMsg{Bytes: len(text)}
	}
}

// Export writes t to an .xlsx workbook at path.
func Export(path string, t export.Timetable) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return ErrMsg{Err: fmt.Errorf("export needs a file name")}
		}
		if err := export.SaveTimetable(path, t); err != nil {
			return ErrMsg{Err: err}
		}
		return ExportedMsg{Path: path}
	}
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
