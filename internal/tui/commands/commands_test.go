package commands

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/timegrid/internal/export"
	"github.com/javiermolinar/timegrid/internal/schedule"
)

func TestCopyText(t *testing.T) {
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	var copied string
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	msg := CopyText("Regular\n  Mon 09:00-10:00  수학\n")()
	got, ok := msg.(CopiedMsg)
	if !ok {
		t.Fatalf("expected CopiedMsg, got %T", msg)
	}
	if copied == "" || got.Bytes != len(copied) {
		t.Errorf("copied %q, msg %+v", copied, got)
	}

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	if _, ok := CopyText("x")().(ErrMsg); !ok {
		t.Error("expected ErrMsg when the clipboard is unavailable")
	}
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week.xlsx")
	tt := export.Timetable{
		Title:       "Semester 1",
		SlotMinutes: 60,
		Regular:     schedule.SlotMap{{Day: 0, Slot: 0}: {Subject: "수학", Color: "#1e88e5"}},
		Naesin:      schedule.SlotMap{},
	}

	msg := Export(path, tt)()
	got, ok := msg.(ExportedMsg)
	if !ok {
		t.Fatalf("expected ExportedMsg, got %#v", msg)
	}
	if got.Path != path {
		t.Errorf("path = %q, want %q", got.Path, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}

func TestExport_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		tt   export.Timetable
	}{
		{name: "no path", path: "", tt: export.Timetable{SlotMinutes: 60}},
		{name: "no slots", path: filepath.Join(t.TempDir(), "x.xlsx"), tt: export.Timetable{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := Export(tc.path, tc.tt)().(ErrMsg); !ok {
				t.Error("expected ErrMsg")
			}
		})
	}
}
