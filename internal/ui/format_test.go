package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/javiermolinar/timegrid/internal/app"
	"github.com/javiermolinar/timegrid/internal/profile"
	"github.com/javiermolinar/timegrid/internal/schedule"
)

func testSnapshot() app.Snapshot {
	reg := schedule.SlotMap{
		{Day: 0, Slot: 0}: {Subject: "수학", Color: "#1e88e5"},
		{Day: 0, Slot: 1}: {Subject: "수학", Color: "#1e88e5"},
		{Day: 2, Slot: 4}: {Subject: "영어", Color: "#fb8c00"},
		{Day: 2, Slot: 5}: {Subject: "영어", Color: "#fb8c00"},
	}
	nae := schedule.SlotMap{
		{Day: 1, Slot: 0}: {Subject: "국어", Color: "#43a047"},
		{Day: 2, Slot: 4}: {Subject: "과학", Color: "#8e24aa"},
		{Day: 2, Slot: 5}: {Subject: "과학", Color: "#8e24aa"},
	}
	return app.Snapshot{
		Settings: profile.DefaultSettings(),
		Regular:  reg,
		Naesin:   nae,
	}
}

func TestCellFor(t *testing.T) {
	snap := testSnapshot()

	tests := []struct {
		name     string
		view     profile.ViewMode
		day      int
		slot     int
		text     string
		conflict bool
	}{
		{"run start", profile.ViewCompare, 0, 0, "수학", false},
		{"run continuation", profile.ViewCompare, 0, 1, "·", false},
		{"empty", profile.ViewCompare, 0, 2, "", false},
		{"naesin only", profile.ViewCompare, 1, 0, "n:국어", false},
		{"conflict start", profile.ViewCompare, 2, 4, "!영어/과학", true},
		{"conflict continuation", profile.ViewCompare, 2, 5, "·", true},
		{"regular view hides naesin", profile.ViewRegular, 1, 0, "", false},
		{"regular view shows regular side", profile.ViewRegular, 2, 4, "영어", false},
		{"naesin view", profile.ViewNaesin, 2, 4, "과학", false},
		{"naesin view continuation", profile.ViewNaesin, 2, 5, "·", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cellFor(snap, tt.view, tt.day, tt.slot)
			if c.text != tt.text {
				t.Errorf("text = %q, want %q", c.text, tt.text)
			}
			if c.conflict != tt.conflict {
				t.Errorf("conflict = %v, want %v", c.conflict, tt.conflict)
			}
		})
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Mon", 6, "Mon   "},
		{"수학", 6, "수학  "},
		{"", 3, "   "},
		{"Wednesday", 6, "Wedne…"},
	}
	for _, tt := range tests {
		if got := fit(tt.in, tt.width); got != tt.want {
			t.Errorf("fit(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestGridOpts_ColWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{80, 9},
		{20, minColWidth},
		{400, maxColWidth},
	}
	for _, tt := range tests {
		if got := (GridOpts{Width: tt.width}).colWidth(); got != tt.want {
			t.Errorf("colWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestPrintGrid(t *testing.T) {
	DisableColor()
	snap := testSnapshot()

	var buf bytes.Buffer
	PrintGrid(&buf, snap, GridOpts{View: profile.ViewCompare, Width: 80})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	if len(lines) != 1+snap.SlotCount() {
		t.Fatalf("lines = %d, want %d", len(lines), 1+snap.SlotCount())
	}
	if !strings.HasPrefix(lines[0], "       Mon") || !strings.HasSuffix(lines[0], "Sun") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "09:00  수학") || !strings.Contains(lines[1], "n:국어") {
		t.Errorf("first row = %q", lines[1])
	}
	if !strings.Contains(lines[5], "!영어/과…") {
		t.Errorf("conflict row = %q", lines[5])
	}
	if lines[len(lines)-1] != "21:00" {
		t.Errorf("last row = %q", lines[len(lines)-1])
	}
}

func TestPrintEntriesAndConflicts(t *testing.T) {
	DisableColor()
	snap := testSnapshot()

	var buf bytes.Buffer
	PrintEntries(&buf, snap.Entries(schedule.PlanRegular), 60)
	want := "  Mon 09:00-11:00      수학\n  Wed 13:00-15:00      영어\n"
	if buf.String() != want {
		t.Errorf("entries = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	PrintEntries(&buf, nil, 60)
	if buf.String() != "  (empty)\n" {
		t.Errorf("empty entries = %q", buf.String())
	}

	buf.Reset()
	PrintConflicts(&buf, snap.Conflicts(), 60)
	if buf.String() != "  ! Wed 13:00-15:00  regular 영어 / naesin 과학\n" {
		t.Errorf("conflicts = %q", buf.String())
	}
}

func TestSlotRange(t *testing.T) {
	d, first, last, err := slotRange("wed", "13:00", "15:00", 60)
	if err != nil {
		t.Fatalf("slotRange: %v", err)
	}
	if d != 2 || first != 4 || last != 5 {
		t.Errorf("slotRange = %d %d %d, want 2 4 5", d, first, last)
	}

	if _, _, _, err := slotRange("wed", "15:00", "13:00", 60); !errors.Is(err, schedule.ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime for reversed range, got %v", err)
	}
	if _, _, _, err := slotRange("8", "13:00", "15:00", 60); !errors.Is(err, schedule.ErrInvalidDay) {
		t.Errorf("expected ErrInvalidDay, got %v", err)
	}
}

func TestFormatSwatch_NoColor(t *testing.T) {
	DisableColor()
	if got := formatSwatch("#1e88e5", "  "); got != "  " {
		t.Errorf("swatch = %q", got)
	}
	if r, g, b, ok := parseRGB("#1e88e5"); !ok || r != 0x1e || g != 0x88 || b != 0xe5 {
		t.Errorf("parseRGB = %d %d %d %v", r, g, b, ok)
	}
	if _, _, _, ok := parseRGB("blue"); ok {
		t.Error("parseRGB should reject names")
	}
}
