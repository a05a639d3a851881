package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/timegrid/internal/app"
	"github.com/javiermolinar/timegrid/internal/export"
	"github.com/javiermolinar/timegrid/internal/profile"
	"github.com/javiermolinar/timegrid/internal/schedule"
	"github.com/javiermolinar/timegrid/internal/tui/commands"
	"github.com/javiermolinar/timegrid/internal/tui/input"
	"github.com/javiermolinar/timegrid/internal/tui/view"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.log.Debug("key", "key", msg.String(), "mode", m.mode)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		if m.mode == ModeSubject {
			m.ctrl.CommitSubject(context.Background(), m.subject.Value())
		}
		return m, tea.Quit
	}

	switch m.mode {
	case ModeSubject:
		return m.handleSubjectKeys(msg)
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	key := msg.String()

	switch key {
	case "q":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		m.moveCursor(-1, 0)
	case "l", "right":
		m.moveCursor(1, 0)
	case "k", "up":
		m.moveCursor(0, -1)
	case "j", "down":
		m.moveCursor(0, 1)
	case "g", "home":
		m.cursor.Slot = 0
		m.ensureCursorVisible()
	case "G", "end":
		m.cursor.Slot = m.snap.SlotCount() - 1
		m.clampCursor()
	case "pgup", "ctrl+u":
		m.moveCursor(0, -max(1, m.visibleRows()/2))
	case "pgdown", "ctrl+d":
		m.moveCursor(0, max(1, m.visibleRows()/2))

	// Editing
	case " ", "enter":
		return m.click(ctx)
	case "esc":
		return m.apply(m.ctrl.CancelAnchor(ctx), nil, "")
	case "d", "x":
		return m.deleteEntry(ctx)
	case "r":
		return m.resolveConflict(ctx)

	// Subject and colour
	case "i", "s":
		return m.enterSubjectMode()
	case "n":
		return m.cycleSubject(ctx, 1)
	case "N":
		return m.cycleSubject(ctx, -1)
	case "1", "2", "3", "4", "5", "6", "7":
		res, err := m.ctrl.PickPreset(ctx, key)
		return m.apply(res, err, "")

	// Settings
	case "p":
		plan := schedule.PlanNaesin
		if m.snap.Settings.ActivePlan == schedule.PlanNaesin {
			plan = schedule.PlanRegular
		}
		res, err := m.ctrl.SetActivePlan(ctx, plan)
		return m.apply(res, err, "Editing "+string(plan))
	case "e":
		tool := profile.ToolErase
		if m.snap.Settings.Tool == profile.ToolErase {
			tool = profile.ToolPaint
		}
		res, err := m.ctrl.SetTool(ctx, tool)
		return m.apply(res, err, "Tool: "+string(tool))
	case "v":
		next := m.snap.Settings.ViewMode.Next()
		res, err := m.ctrl.SetViewMode(ctx, next)
		return m.apply(res, err, "View: "+string(next))
	case "o":
		on := !m.snap.Settings.PreventOverlap
		return m.apply(m.ctrl.SetPreventOverlap(ctx, on), nil, "Prevent overlap: "+view.OnOff(on))
	case "a":
		on := !m.snap.Settings.AutoColor
		return m.apply(m.ctrl.SetAutoColor(ctx, on), nil, "Auto colour: "+view.OnOff(on))
	case "L":
		res := m.ctrl.ToggleLock(ctx)
		msg := "Unlocked"
		if m.ctrl.Locked() {
			msg = "Locked"
		}
		return m.apply(res, nil, msg)

	// Profiles
	case "tab":
		return m.cycleProfile(ctx, 1)
	case "shift+tab":
		return m.cycleProfile(ctx, -1)

	// Other
	case "y":
		return m, commands.CopyText(export.Text(m.snap.Timetable()))
	case "/":
		m.mode = ModePrompt
		m.prompt.SetValue("/")
		m.prompt.CursorEnd()
		return m, m.prompt.Focus()
	case "?":
		m.mode = ModeHelp
	}
	return m, nil
}

func (m *Model) moveCursor(dDay, dSlot int) {
	m.cursor.Day += dDay
	m.cursor.Slot += dSlot
	m.clampCursor()
}

func (m Model) click(ctx context.Context) (Model, tea.Cmd) {
	day, slot := m.cursor.Day, m.cursor.Slot
	res, err := m.ctrl.Click(ctx, day, slot)

	okMsg := ""
	at := schedule.DayName(day) + " " + schedule.SlotTime(slot, m.snap.Settings.SlotMinutes)
	switch {
	case res.Anchored:
		okMsg = "Range start at " + at
	case res.Painted > 0:
		okMsg = fmt.Sprintf("Painted %d slots", res.Painted)
	case res.Erased > 0:
		okMsg = fmt.Sprintf("Erased %d slots", res.Erased)
	}
	return m.apply(res, err, okMsg)
}

func (m Model) deleteEntry(ctx context.Context) (Model, tea.Cmd) {
	plan := m.snap.Settings.ActivePlan
	e, ok := schedule.EntryAt(m.snap.Map(plan), m.snap.Settings.SlotMinutes, m.cursor.Day, m.cursor.Slot)
	if !ok {
		return m, m.setError(fmt.Errorf("%w in %s", app.ErrEntryNotFound, plan))
	}
	res, err := m.ctrl.DeleteEntry(ctx, plan, e.Day, e.StartSlot)
	return m.apply(res, err, fmt.Sprintf("Deleted %s from %s", e.Subject, plan))
}

func (m Model) resolveConflict(ctx context.Context) (Model, tea.Cmd) {
	c, ok := schedule.ConflictAt(m.snap.Regular, m.snap.Naesin, m.snap.Settings.SlotMinutes, m.cursor.Day, m.cursor.Slot)
	if !ok {
		return m, m.setError(app.ErrConflictNotFound)
	}
	plan := m.snap.Settings.ActivePlan
	res, err := m.ctrl.ResolveConflict(ctx, plan, c.Day, c.StartSlot)
	return m.apply(res, err, fmt.Sprintf("Kept %s, removed %s", c.Side(otherPlan(plan)).Subject, c.Side(plan).Subject))
}

func otherPlan(p schedule.Plan) schedule.Plan {
	if p == schedule.PlanNaesin {
		return schedule.PlanRegular
	}
	return schedule.PlanNaesin
}

func (m Model) cycleSubject(ctx context.Context, dir int) (Model, tea.Cmd) {
	known := m.snap.KnownSubjects()
	if len(known) == 0 {
		return m, m.setStatus("No subjects yet")
	}
	i := slices.Index(known, strings.TrimSpace(m.snap.UI.Subject))
	switch {
	case i < 0 && dir < 0:
		i = len(known) - 1
	case i < 0:
		i = 0
	default:
		i = (i + dir + len(known)) % len(known)
	}
	res, err := m.ctrl.SelectSubject(ctx, known[i])
	return m.apply(res, err, "")
}

func (m Model) cycleProfile(ctx context.Context, dir int) (Model, tea.Cmd) {
	n := len(m.snap.Profiles)
	if n < 2 {
		return m, nil
	}
	i := slices.IndexFunc(m.snap.Profiles, func(p app.ProfileSummary) bool { return p.Active })
	next := m.snap.Profiles[(i+dir+n)%n]
	res, err := m.ctrl.SwitchProfile(ctx, next.ID)
	return m.apply(res, err, "Profile: "+next.Name)
}

func (m Model) enterSubjectMode() (Model, tea.Cmd) {
	if m.snap.Settings.Locked {
		return m, m.setError(ErrLocked)
	}
	m.mode = ModeSubject
	m.subject.SetValue(m.snap.UI.Subject)
	m.subject.CursorEnd()
	return m, m.subject.Focus()
}

// handleSubjectKeys handles keys while the subject field has focus. Every
// change is sent to the controller as uncommitted text; leaving the field
// commits it.
func (m Model) handleSubjectKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "enter", "esc":
		m.mode = ModeNormal
		m.subject.Blur()
		return m.apply(m.ctrl.CommitSubject(ctx, m.subject.Value()), nil, "")

	case "tab":
		if s, ok := input.SubjectAutocomplete(m.subject.Value(), m.snap.KnownSubjects()); ok {
			m.subject.SetValue(s)
			m.subject.CursorEnd()
			return m.apply(m.ctrl.SetUncommitted(ctx, s), nil, "")
		}
		return m, nil
	}

	before := m.subject.Value()
	var cmd tea.Cmd
	m.subject, cmd = m.subject.Update(msg)
	if m.subject.Value() == before {
		return m, cmd
	}
	updated, statusCmd := m.apply(m.ctrl.SetUncommitted(ctx, m.subject.Value()), nil, "")
	return updated, tea.Batch(cmd, statusCmd)
}

// handlePromptKeys handles keys in prompt mode.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.leavePrompt()
		return m, nil

	case "enter":
		line := m.prompt.Value()
		m.leavePrompt()
		return m.runPrompt(line)

	case "tab":
		if completed, ok := input.PromptAutocomplete(m.prompt.Value(), promptCommands); ok {
			m.prompt.SetValue(completed)
			m.prompt.CursorEnd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	if m.prompt.Value() == "" {
		m.leavePrompt()
	}
	return m, cmd
}

func (m *Model) leavePrompt() {
	m.mode = ModeNormal
	m.prompt.Reset()
	m.prompt.Blur()
	m.ensureCursorVisible()
}

// runPrompt executes one /command line.
func (m Model) runPrompt(line string) (Model, tea.Cmd) {
	ctx := context.Background()
	name, args, ok := input.ParsePrompt(line)
	if !ok {
		if strings.TrimSpace(line) == "" || strings.TrimSpace(line) == "/" {
			return m, nil
		}
		return m, m.setError(fmt.Errorf("commands start with /, try /help"))
	}
	m.log.Debug("prompt command", "name", name, "args", args)

	switch name {
	case "/new":
		res, err := m.ctrl.CreateProfile(ctx, args)
		return m.apply(res, err, "Created profile "+args)

	case "/rename":
		res, err := m.ctrl.RenameProfile(ctx, args)
		return m.apply(res, err, "Renamed profile to "+args)

	case "/delete":
		if m.snap.Settings.Locked {
			return m, m.setError(ErrLocked)
		}
		if len(m.snap.Profiles) <= 1 {
			return m, m.setError(profile.ErrLastProfile)
		}
		victim := m.snap.Profile.Name
		return m.ask(fmt.Sprintf("Delete profile %q and all of its cells?", victim), func(m Model) (Model, tea.Cmd) {
			res, err := m.ctrl.DeleteProfile(ctx)
			return m.apply(res, err, "Deleted profile "+victim)
		})

	case "/profile":
		res, err := m.ctrl.SwitchProfile(ctx, args)
		return m.apply(res, err, "Profile: "+args)

	case "/subject":
		res, err := m.ctrl.SelectSubject(ctx, args)
		return m.apply(res, err, "")

	case "/color", "/colour":
		var res app.Result
		var err error
		if strings.HasPrefix(args, "#") {
			res, err = m.ctrl.SetCustomColor(ctx, args)
		} else {
			res, err = m.ctrl.PickPreset(ctx, args)
		}
		return m.apply(res, err, "")

	case "/forget":
		if args == "" {
			return m, m.setError(errors.New("usage: /forget SUBJECT"))
		}
		if m.snap.Settings.Locked {
			return m, m.setError(ErrLocked)
		}
		return m.ask(fmt.Sprintf("Remove %q from both plans?", args), func(m Model) (Model, tea.Cmd) {
			res, err := m.ctrl.DeleteSubject(ctx, args)
			return m.apply(res, err, "Removed "+args)
		})

	case "/cleanup":
		res, removed := m.ctrl.CleanupHidden(ctx)
		msg := "Nothing to clean up"
		if len(removed) > 0 {
			msg = "Removed " + strings.Join(removed, ", ")
		}
		return m.apply(res, nil, msg)

	case "/slot":
		minutes, err := strconv.Atoi(args)
		if err != nil {
			return m, m.setError(fmt.Errorf("%w: %q", schedule.ErrInvalidSlotMinutes, args))
		}
		res, err := m.ctrl.SetSlotMinutes(ctx, minutes)
		return m.apply(res, err, fmt.Sprintf("Slots are %d minutes", minutes))

	case "/export":
		return m, commands.Export(args, m.snap.Timetable())

	case "/copy":
		return m, commands.CopyText(export.Text(m.snap.Timetable()))

	case "/help":
		m.mode = ModeHelp
		return m, nil
	}
	return m, m.setError(fmt.Errorf("unknown command %s, try /help", name))
}

func (m Model) ask(message string, action func(Model) (Model, tea.Cmd)) (Model, tea.Cmd) {
	m.mode = ModeConfirm
	m.confirm = &confirmation{message: message, action: action}
	return m, nil
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		action := m.confirm.action
		m.mode = ModeNormal
		m.confirm = nil
		return action(m)
	case "n", "N", "esc", "q":
		m.mode = ModeNormal
		m.confirm = nil
		return m, m.setStatus("Cancelled")
	}
	return m, nil
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?", "q", "enter":
		m.mode = ModeNormal
	}
	return m, nil
}
