package ui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/timegrid/internal/app"
	"github.com/javiermolinar/timegrid/internal/config"
	"github.com/javiermolinar/timegrid/internal/schedule"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.Backend = config.BackendJSON
	cfg.Storage.StatePath = filepath.Join(dir, "state.json")
	cfg.Storage.DBPath = filepath.Join(dir, "timegrid.db")
	cfg.Log.Dir = filepath.Join(dir, "log")
	return cfg
}

// run executes one command line against cfg with a fresh App, as a shell
// invocation would.
func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	DisableColor()
	a := NewApp(cfg)
	defer func() { _ = a.Close() }()

	var out, errOut bytes.Buffer
	a.SetOutput(&out, &errOut)
	a.SetArgs(args)
	err := a.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, cfg *config.Config, args ...string) string {
	t.Helper()
	out, err := run(t, cfg, args...)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out
}

func TestPaintAndEntries(t *testing.T) {
	cfg := testConfig(t)

	out := mustRun(t, cfg, "paint", "--day", "mon", "--start", "09:00", "--end", "11:00", "--subject", "수학")
	if !strings.Contains(out, "Painted 2 slot(s) of regular on Mon 09:00-11:00") {
		t.Errorf("paint output = %q", out)
	}

	out = mustRun(t, cfg, "entries", "--plan", "regular")
	if !strings.Contains(out, "Mon 09:00-11:00") || !strings.Contains(out, "수학") {
		t.Errorf("entries output = %q", out)
	}

	if _, err := os.Stat(cfg.Storage.StatePath); err != nil {
		t.Errorf("state file not written: %v", err)
	}
}

func TestPaint_BlockedByOtherPlan(t *testing.T) {
	cfg := testConfig(t)
	mustRun(t, cfg, "paint", "--plan", "naesin", "--day", "wed", "--start", "13:00", "--end", "14:00", "--subject", "국어")

	out := mustRun(t, cfg, "paint", "--plan", "regular", "--day", "wed", "--start", "12:00", "--end", "15:00", "--subject", "영어")
	if !strings.Contains(out, "Painted 2 slot(s)") || !strings.Contains(out, "1 slot(s) blocked by the naesin plan") {
		t.Errorf("paint output = %q", out)
	}

	out = mustRun(t, cfg, "conflicts")
	if !strings.Contains(out, "No conflicts.") {
		t.Errorf("conflicts output = %q", out)
	}
}

func TestConflictsAndResolve(t *testing.T) {
	cfg := testConfig(t)
	mustRun(t, cfg, "settings", "--prevent-overlap=false")
	mustRun(t, cfg, "paint", "--plan", "naesin", "--day", "2", "--start", "13:00", "--end", "15:00", "--subject", "국어")
	mustRun(t, cfg, "paint", "--plan", "regular", "--day", "2", "--start", "13:00", "--end", "15:00", "--subject", "영어")

	out := mustRun(t, cfg, "conflicts")
	if !strings.Contains(out, "Wed 13:00-15:00") || !strings.Contains(out, "영어") || !strings.Contains(out, "국어") {
		t.Errorf("conflicts output = %q", out)
	}

	out = mustRun(t, cfg, "resolve", "--plan", "naesin", "--day", "wed", "--start", "13:00")
	if !strings.Contains(out, "Cleared 2 slot(s) of naesin on Wed") {
		t.Errorf("resolve output = %q", out)
	}
	if out := mustRun(t, cfg, "conflicts"); !strings.Contains(out, "No conflicts.") {
		t.Errorf("conflicts after resolve = %q", out)
	}

	if _, err := run(t, cfg, "resolve", "--plan", "naesin", "--day", "wed", "--start", "13:00"); !errors.Is(err, app.ErrConflictNotFound) {
		t.Errorf("expected ErrConflictNotFound, got %v", err)
	}
}

func TestErase(t *testing.T) {
	cfg := testConfig(t)
	mustRun(t, cfg, "paint", "--day", "fri", "--start", "09:00", "--end", "12:00", "--subject", "수학")

	out := mustRun(t, cfg, "erase", "--day", "fri", "--start", "10:00", "--end", "11:00")
	if !strings.Contains(out, "Erased 1 slot(s)") {
		t.Errorf("erase output = %q", out)
	}
	out = mustRun(t, cfg, "entries", "--plan", "regular")
	if !strings.Contains(out, "Fri 09:00-10:00") || !strings.Contains(out, "Fri 11:00-12:00") {
		t.Errorf("entries after erase = %q", out)
	}
}

func TestPaint_InvalidInput(t *testing.T) {
	cfg := testConfig(t)
	tests := []struct {
		name string
		args []string
		want error
	}{
		{
			name: "bad day",
			args: []string{"paint", "--day", "someday", "--start", "09:00", "--end", "10:00", "--subject", "수학"},
			want: schedule.ErrInvalidDay,
		},
		{
			name: "off grid time",
			args: []string{"paint", "--day", "mon", "--start", "09:30", "--end", "10:00", "--subject", "수학"},
			want: schedule.ErrInvalidTime,
		},
		{
			name: "bad plan",
			args: []string{"paint", "--plan", "both", "--day", "mon", "--start", "09:00", "--end", "10:00", "--subject", "수학"},
			want: schedule.ErrInvalidPlan,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, cfg, tt.args...); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLockBlocksEditing(t *testing.T) {
	cfg := testConfig(t)
	mustRun(t, cfg, "lock")

	_, err := run(t, cfg, "paint", "--day", "mon", "--start", "09:00", "--end", "10:00", "--subject", "수학")
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if out := mustRun(t, cfg, "settings", "--view", "regular"); !strings.Contains(out, "view             = regular") {
		t.Errorf("view change should work while locked: %q", out)
	}

	mustRun(t, cfg, "unlock")
	mustRun(t, cfg, "paint", "--day", "mon", "--start", "09:00", "--end", "10:00", "--subject", "수학")
}

func TestSettings(t *testing.T) {
	cfg := testConfig(t)

	out := mustRun(t, cfg, "settings")
	if !strings.Contains(out, "slot_minutes     = 60") {
		t.Errorf("settings output = %q", out)
	}

	out = mustRun(t, cfg, "settings", "--slot-minutes", "30", "--tool", "erase", "--plan", "naesin")
	for _, want := range []string{"slot_minutes     = 30", "tool             = erase", "plan             = naesin"} {
		if !strings.Contains(out, want) {
			t.Errorf("settings output missing %q: %q", want, out)
		}
	}

	mustRun(t, cfg, "paint", "--day", "mon", "--start", "09:30", "--end", "10:00", "--subject", "수학")
	if _, err := run(t, cfg, "settings", "--slot-minutes", "60"); !errors.Is(err, app.ErrSlotMinutesLocked) {
		t.Errorf("expected ErrSlotMinutesLocked, got %v", err)
	}
}

func TestSettings_ConfigSeedsFreshState(t *testing.T) {
	cfg := testConfig(t)
	cfg.Schedule.SlotMinutes = 20
	cfg.Schedule.PreventOverlap = false

	out := mustRun(t, cfg, "settings")
	if !strings.Contains(out, "slot_minutes     = 20") || !strings.Contains(out, "prevent_overlap  = false") {
		t.Errorf("settings output = %q", out)
	}
}

func TestSubjectsAndColor(t *testing.T) {
	cfg := testConfig(t)
	mustRun(t, cfg, "paint", "--day", "mon", "--start", "09:00", "--end", "10:00", "--subject", "수학")
	mustRun(t, cfg, "paint", "--day", "tue", "--start", "09:00", "--end", "10:00", "--subject", "영어", "--color", "red")

	out := mustRun(t, cfg, "subjects")
	if !strings.Contains(out, "#e53935  영어") || !strings.Contains(out, "수학") {
		t.Errorf("subjects output = %q", out)
	}

	out = mustRun(t, cfg, "color", "수학", "#00AA00")
	if !strings.Contains(out, "#00aa00") {
		t.Errorf("color output = %q", out)
	}

	out = mustRun(t, cfg, "subjects", "delete", "영어")
	if !strings.Contains(out, "(1 cell(s))") {
		t.Errorf("delete output = %q", out)
	}
	if out := mustRun(t, cfg, "subjects"); strings.Contains(out, "영어") {
		t.Errorf("deleted subject still listed: %q", out)
	}

	if out := mustRun(t, cfg, "subjects", "--hidden"); !strings.Contains(out, "No subjects.") {
		t.Errorf("hidden output = %q", out)
	}
	if out := mustRun(t, cfg, "subjects", "cleanup"); !strings.Contains(out, "Nothing to clean up.") {
		t.Errorf("cleanup output = %q", out)
	}
}

func TestSubjectsSelectThenPaint(t *testing.T) {
	cfg := testConfig(t)
	mustRun(t, cfg, "subjects", "select", "과학")
	out := mustRun(t, cfg, "paint", "--day", "sun", "--start", "21:00", "--end", "22:00")
	if !strings.Contains(out, "Painted 1 slot(s)") {
		t.Errorf("paint output = %q", out)
	}
	if out := mustRun(t, cfg, "entries", "--plan", "regular"); !strings.Contains(out, "과학") {
		t.Errorf("entries output = %q", out)
	}
}

func TestProfiles(t *testing.T) {
	cfg := testConfig(t)
	mustRun(t, cfg, "paint", "--day", "mon", "--start", "09:00", "--end", "10:00", "--subject", "수학")

	if out := mustRun(t, cfg, "profile", "new", "2학기"); !strings.Contains(out, "Created profile 2학기") {
		t.Errorf("new output = %q", out)
	}
	out := mustRun(t, cfg, "profile", "list")
	if !strings.Contains(out, "* 2학기") || !strings.Contains(out, "  Semester 1  1 cell(s)") {
		t.Errorf("list output = %q", out)
	}

	mustRun(t, cfg, "profile", "rename", "Fall", "term")
	mustRun(t, cfg, "profile", "use", "Semester 1")
	if out := mustRun(t, cfg, "entries", "--plan", "regular"); !strings.Contains(out, "수학") {
		t.Errorf("switching back lost cells: %q", out)
	}

	out = mustRun(t, cfg, "profile", "delete", "--yes")
	if !strings.Contains(out, "active profile is now Fall term") {
		t.Errorf("delete output = %q", out)
	}
	if _, err := run(t, cfg, "profile", "use", "Winter"); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestShow(t *testing.T) {
	cfg := testConfig(t)
	mustRun(t, cfg, "paint", "--day", "mon", "--start", "09:00", "--end", "11:00", "--subject", "수학")

	out := mustRun(t, cfg, "show", "--view", "regular")
	if !strings.Contains(out, "=== Semester 1 (regular) ===") {
		t.Errorf("show header = %q", out)
	}
	if !strings.Contains(out, "09:00") || !strings.Contains(out, "수학") {
		t.Errorf("show grid = %q", out)
	}
	if _, err := run(t, cfg, "show", "--view", "grid"); err == nil {
		t.Error("expected error for unknown view")
	}
}

func TestExport(t *testing.T) {
	cfg := testConfig(t)
	mustRun(t, cfg, "paint", "--day", "mon", "--start", "09:00", "--end", "11:00", "--subject", "수학")

	path := filepath.Join(t.TempDir(), "grid.xlsx")
	out := mustRun(t, cfg, "export", path, "--title", "Spring")
	if !strings.Contains(out, "Exported") {
		t.Errorf("export output = %q", out)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("export file missing: %v", err)
	}
}

func TestVersion(t *testing.T) {
	out := mustRun(t, testConfig(t), "version")
	if !strings.HasPrefix(out, "timegrid dev") {
		t.Errorf("version output = %q", out)
	}
}

func TestSQLiteBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.Backend = config.BackendSQLite
	mustRun(t, cfg, "paint", "--day", "mon", "--start", "09:00", "--end", "10:00", "--subject", "수학")
	if out := mustRun(t, cfg, "entries", "--plan", "regular"); !strings.Contains(out, "수학") {
		t.Errorf("entries output = %q", out)
	}
	if _, err := os.Stat(cfg.Storage.DBPath); err != nil {
		t.Errorf("database not created: %v", err)
	}
}
