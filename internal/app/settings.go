package app

import (
	"context"
	"fmt"

	"github.com/javiermolinar/timegrid/internal/profile"
	"github.com/javiermolinar/timegrid/internal/schedule"
)

// SetViewMode changes which plans are displayed. Allowed while locked.
func (c *Controller) SetViewMode(ctx context.Context, v profile.ViewMode) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !v.Valid() {
		return Result{}, fmt.Errorf("unknown view mode %q", v)
	}
	var res Result
	if c.state.Settings.ViewMode == v && c.state.UI.Anchor == nil {
		return res, nil
	}
	c.state.Settings.ViewMode = v
	c.state.UI.Anchor = nil
	c.save(ctx, &res, false)
	return res, nil
}

// SetActivePlan selects the plan that clicks edit.
func (c *Controller) SetActivePlan(ctx context.Context, plan schedule.Plan) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("active plan"), nil
	}
	if err := checkPlan(plan); err != nil {
		return Result{}, err
	}
	c.state.Settings.ActivePlan = plan
	c.state.UI.Anchor = nil
	var res Result
	c.save(ctx, &res, false)
	return res, nil
}

// SetTool selects paint or erase.
func (c *Controller) SetTool(ctx context.Context, tool profile.Tool) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("tool"), nil
	}
	if !tool.Valid() {
		return Result{}, fmt.Errorf("unknown tool %q", tool)
	}
	c.state.Settings.Tool = tool
	c.state.UI.Anchor = nil
	var res Result
	c.save(ctx, &res, false)
	return res, nil
}

// SetPreventOverlap toggles blocking of slots occupied by the other plan.
func (c *Controller) SetPreventOverlap(ctx context.Context, on bool) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("prevent overlap")
	}
	c.state.Settings.PreventOverlap = on
	var res Result
	c.save(ctx, &res, false)
	return res
}

// SetAutoColor toggles automatic subject colours. Turning it on applies the
// selected subject's colour immediately.
func (c *Controller) SetAutoColor(ctx context.Context, on bool) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("auto color")
	}
	c.state.Settings.AutoColor = on
	created := c.applyAutoColor()
	var res Result
	c.save(ctx, &res, created)
	return res
}

// SetSlotMinutes changes the grid granularity. It is refused once any
// profile holds cells, since existing slot indexes would change meaning.
func (c *Controller) SetSlotMinutes(ctx context.Context, minutes int) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("slot minutes"), nil
	}
	if !schedule.ValidSlotMinutes(minutes) {
		return Result{}, fmt.Errorf("%w: %d (want one of %v)", schedule.ErrInvalidSlotMinutes, minutes, schedule.SlotOptions())
	}
	if minutes == c.state.Settings.SlotMinutes {
		return Result{}, nil
	}
	if c.state.AnyCells() {
		return Result{}, ErrSlotMinutesLocked
	}
	c.state.Settings.SlotMinutes = minutes
	c.state.UI.Anchor = nil
	c.log.Debug("slot minutes changed", "minutes", minutes)
	var res Result
	c.save(ctx, &res, false)
	return res, nil
}

// ToggleLock flips read-only mode.
func (c *Controller) ToggleLock(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setLocked(ctx, !c.state.Settings.Locked)
}

// SetLocked enables or disables read-only mode.
func (c *Controller) SetLocked(ctx context.Context, locked bool) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Settings.Locked == locked {
		return Result{}
	}
	return c.setLocked(ctx, locked)
}

func (c *Controller) setLocked(ctx context.Context, locked bool) Result {
	c.state.Settings.Locked = locked
	c.state.UI.Anchor = nil
	c.log.Debug("lock", "locked", locked)
	var res Result
	c.save(ctx, &res, false)
	return res
}
