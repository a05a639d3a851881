package app

import (
	"context"
	"fmt"

	"github.com/javiermolinar/timegrid/internal/profile"
	"github.com/javiermolinar/timegrid/internal/schedule"
	"github.com/javiermolinar/timegrid/internal/subject"
)

// PaintRequest paints an inclusive slot range in one call.
type PaintRequest struct {
	Plan schedule.Plan
	Day  int
	From int
	To   int
	// Subject defaults to the selected subject.
	Subject string
	// Color, when set, is stored as the subject's colour before painting.
	Color string
}

// readySubject returns the selected subject and the colour to paint it
// with. In auto-colour mode the subject's colour is assigned on first use.
// The second return reports whether the colour table changed.
func (c *Controller) readySubject() (schedule.Cell, bool, error) {
	if c.composing {
		return schedule.Cell{}, false, ErrComposing
	}
	name, err := subject.Validate(c.state.UI.Subject)
	if err != nil {
		return schedule.Cell{}, false, err
	}
	created := false
	if c.state.Settings.AutoColor {
		var color string
		color, created, err = c.active().SubjectColors.Assign(name)
		if err != nil {
			return schedule.Cell{}, false, err
		}
		c.state.UI.Color = color
	}
	return schedule.Cell{Subject: name, Color: c.state.UI.Color}, created, nil
}

// Click applies one grid click with the active tool and plan.
//
// The first click on a day sets the anchor and paints (or erases) that
// single cell. A second click on the same day fills the range between the
// anchor and the click, then clears the anchor. A click on another day
// starts over.
func (c *Controller) Click(ctx context.Context, day, slot int) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		res := c.suppressed("click")
		// A pending range cannot complete while locked.
		if c.state.UI.Anchor != nil {
			c.state.UI.Anchor = nil
			c.save(ctx, &res, false)
		}
		return res, nil
	}
	if err := c.checkSlot(day, slot); err != nil {
		return Result{}, err
	}

	plan := c.state.Settings.ActivePlan
	anchor := c.state.UI.Anchor
	g := c.grid()
	var res Result

	if c.state.Settings.Tool == profile.ToolErase {
		if anchor != nil && anchor.Day == day {
			res.Erased = g.EraseRange(plan, day, anchor.Slot, slot)
			c.state.UI.Anchor = nil
			c.log.Debug("erase range", "plan", plan, "day", day, "from", anchor.Slot, "to", slot, "erased", res.Erased)
		} else {
			c.state.UI.Anchor = &schedule.SlotKey{Day: day, Slot: slot}
			res.Anchored = true
			if g.ClearCell(plan, day, slot) {
				res.Erased = 1
			}
			c.log.Debug("erase anchor", "plan", plan, "day", day, "slot", slot, "erased", res.Erased)
		}
		c.save(ctx, &res, true)
		return res, nil
	}

	cell, colorCreated, err := c.readySubject()
	if err != nil {
		return Result{}, err
	}

	if anchor != nil && anchor.Day == day {
		pr := g.PaintRange(plan, day, anchor.Slot, slot, cell, c.state.Settings.PreventOverlap)
		res.Painted, res.Blocked = pr.Painted, pr.Blocked
		c.state.UI.Anchor = nil
		c.log.Debug("paint range", "plan", plan, "day", day, "from", anchor.Slot, "to", slot,
			"subject", cell.Subject, "painted", pr.Painted, "blocked", pr.Blocked)
		c.save(ctx, &res, true)
		return res, nil
	}

	if c.state.Settings.PreventOverlap && g.Blocked(plan, day, slot) {
		c.state.UI.Anchor = nil
		res.Blocked = 1
		if colorCreated || anchor != nil {
			c.save(ctx, &res, colorCreated)
		}
		return res, fmt.Errorf("%w: %s %s", schedule.ErrOverlapBlocked,
			schedule.DayName(day), schedule.SlotTime(slot, c.state.Settings.SlotMinutes))
	}

	g.SetCell(plan, day, slot, cell)
	c.state.UI.Anchor = &schedule.SlotKey{Day: day, Slot: slot}
	res.Painted = 1
	res.Anchored = true
	c.log.Debug("paint anchor", "plan", plan, "day", day, "slot", slot, "subject", cell.Subject)
	c.save(ctx, &res, true)
	return res, nil
}

// Paint fills the inclusive range [From, To] in one step.
func (c *Controller) Paint(ctx context.Context, req PaintRequest) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("paint"), nil
	}
	if err := checkPlan(req.Plan); err != nil {
		return Result{}, err
	}
	if err := c.checkSlot(req.Day, req.From); err != nil {
		return Result{}, err
	}
	if err := c.checkSlot(req.Day, req.To); err != nil {
		return Result{}, err
	}
	if c.composing {
		return Result{}, ErrComposing
	}

	raw := c.state.UI.Subject
	if req.Subject != "" {
		raw = req.Subject
	}
	name, err := subject.Validate(raw)
	if err != nil {
		return Result{}, err
	}
	var color string
	if req.Color != "" {
		if color, err = subject.ParseColor(req.Color); err != nil {
			return Result{}, err
		}
	}

	c.state.UI.Subject = name
	table := c.active().SubjectColors
	if color != "" {
		if err := table.Set(name, color); err != nil {
			return Result{}, err
		}
		c.state.UI.Color = color
	} else if override, ok := table.Get(name); ok && !c.state.Settings.AutoColor {
		c.state.UI.Color = override
	}

	cell, _, err := c.readySubject()
	if err != nil {
		return Result{}, err
	}

	pr := c.grid().PaintRange(req.Plan, req.Day, req.From, req.To, cell, c.state.Settings.PreventOverlap)
	res := Result{Painted: pr.Painted, Blocked: pr.Blocked}
	c.state.UI.Anchor = nil
	c.log.Debug("paint", "plan", req.Plan, "day", req.Day, "from", req.From, "to", req.To,
		"subject", cell.Subject, "painted", pr.Painted, "blocked", pr.Blocked)
	c.save(ctx, &res, true)
	return res, nil
}

// Erase clears the inclusive range [from, to] of one plan.
func (c *Controller) Erase(ctx context.Context, plan schedule.Plan, day, from, to int) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("erase"), nil
	}
	if err := checkPlan(plan); err != nil {
		return Result{}, err
	}
	if err := c.checkSlot(day, from); err != nil {
		return Result{}, err
	}
	if err := c.checkSlot(day, to); err != nil {
		return Result{}, err
	}

	res := Result{Erased: c.grid().EraseRange(plan, day, from, to)}
	c.state.UI.Anchor = nil
	c.log.Debug("erase", "plan", plan, "day", day, "from", from, "to", to, "erased", res.Erased)
	c.save(ctx, &res, res.Erased > 0)
	return res, nil
}

// DeleteEntry removes the whole entry of plan starting at (day, startSlot).
func (c *Controller) DeleteEntry(ctx context.Context, plan schedule.Plan, day, startSlot int) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("delete entry"), nil
	}
	if err := checkPlan(plan); err != nil {
		return Result{}, err
	}
	e, ok := schedule.FindEntry(c.active().Map(plan), c.state.Settings.SlotMinutes, day, startSlot)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s %s", ErrEntryNotFound, plan, schedule.SlotKey{Day: day, Slot: startSlot})
	}

	res := Result{Erased: c.grid().ClearRange(plan, e.Day, e.StartSlot, e.EndSlot)}
	c.state.UI.Anchor = nil
	c.log.Debug("delete entry", "plan", plan, "day", day, "start", e.StartSlot, "end", e.EndSlot, "subject", e.Subject)
	c.save(ctx, &res, true)
	return res, nil
}

// ResolveConflict clears plan's side of the conflict run starting at
// (day, startSlot).
func (c *Controller) ResolveConflict(ctx context.Context, plan schedule.Plan, day, startSlot int) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("resolve conflict"), nil
	}
	if err := checkPlan(plan); err != nil {
		return Result{}, err
	}
	p := c.active()
	ce, ok := schedule.FindConflict(p.Regular, p.Naesin, c.state.Settings.SlotMinutes, day, startSlot)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrConflictNotFound, schedule.SlotKey{Day: day, Slot: startSlot})
	}

	res := Result{Erased: c.grid().ClearRange(plan, ce.Day, ce.StartSlot, ce.EndSlot)}
	c.state.UI.Anchor = nil
	c.log.Debug("resolve conflict", "plan", plan, "day", day, "start", ce.StartSlot, "end", ce.EndSlot)
	c.save(ctx, &res, true)
	return res, nil
}

// CancelAnchor drops a pending range start. It works while locked.
func (c *Controller) CancelAnchor(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	var res Result
	if c.state.UI.Anchor == nil {
		return res
	}
	c.state.UI.Anchor = nil
	c.save(ctx, &res, false)
	return res
}
