package app

import (
	"context"
	"fmt"

	"github.com/javiermolinar/timegrid/internal/subject"
)

// SetUncommitted records text typed into the subject field while it is
// still being composed. Nothing is canonicalised or stored in the colour
// table until CommitSubject.
func (c *Controller) SetUncommitted(ctx context.Context, text string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("type subject")
	}
	c.composing = true
	c.state.UI.Subject = text
	c.state.UI.Anchor = nil
	var res Result
	c.save(ctx, &res, false)
	return res
}

// CommitSubject ends composition and selects text as the subject. A
// complete subject gets its auto colour assigned; incomplete text is kept
// as typed but never reaches the colour table.
func (c *Controller) CommitSubject(ctx context.Context, text string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("commit subject")
	}
	c.composing = false
	c.state.UI.Subject = text
	c.state.UI.Anchor = nil

	var res Result
	created := c.applyAutoColor()
	c.log.Debug("subject committed", "subject", subject.Canonicalize(text), "color", c.state.UI.Color)
	c.save(ctx, &res, created)
	return res
}

// applyAutoColor selects the selected subject's colour in auto-colour mode,
// storing it on first use. It reports whether the colour table changed.
func (c *Controller) applyAutoColor() bool {
	if !c.state.Settings.AutoColor {
		return false
	}
	name := subject.Canonicalize(c.state.UI.Subject)
	if !subject.IsComplete(name) {
		return false
	}
	color, created, err := c.active().SubjectColors.Assign(name)
	if err != nil {
		return false
	}
	c.state.UI.Color = color
	return created
}

// SelectSubject selects an existing subject, as when clicking its chip.
func (c *Controller) SelectSubject(ctx context.Context, name string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("select subject"), nil
	}
	s, err := subject.Validate(name)
	if err != nil {
		return Result{}, err
	}
	c.composing = false
	c.state.UI.Subject = s
	if c.state.Settings.AutoColor {
		c.state.UI.Color = c.active().SubjectColors.Resolve(s)
	}
	c.state.UI.Anchor = nil
	var res Result
	c.save(ctx, &res, false)
	return res, nil
}

// PickPreset selects a palette colour by name, index or value. With a
// complete subject selected the colour is also stored for that subject.
func (c *Controller) PickPreset(ctx context.Context, key string) (Result, error) {
	color, ok := subject.PresetByKey(key)
	if !ok {
		for _, p := range subject.Palette {
			if p.Value == key {
				color, ok = p.Value, true
			}
		}
	}
	if !ok {
		return Result{}, fmt.Errorf("%w: %q is not a preset", subject.ErrInvalidColor, key)
	}
	return c.pickColor(ctx, color, "pick preset")
}

// SetCustomColor selects an arbitrary "#rrggbb" colour, storing it for the
// selected subject like PickPreset.
func (c *Controller) SetCustomColor(ctx context.Context, color string) (Result, error) {
	v, err := subject.ParseColor(color)
	if err != nil {
		return Result{}, err
	}
	return c.pickColor(ctx, v, "custom color")
}

func (c *Controller) pickColor(ctx context.Context, color, op string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed(op), nil
	}
	c.state.UI.Color = color

	touched := false
	name := subject.Canonicalize(c.state.UI.Subject)
	if !c.composing && subject.IsComplete(name) {
		if err := c.active().SubjectColors.Set(name, color); err == nil {
			touched = true
		}
	}
	c.log.Debug(op, "color", color, "subject", name, "stored", touched)
	var res Result
	c.save(ctx, &res, touched)
	return res, nil
}

// SetSubjectColor stores a colour override for any subject. Already
// painted cells keep their colour.
func (c *Controller) SetSubjectColor(ctx context.Context, name, color string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("subject color"), nil
	}
	v, err := subject.ParseColor(color)
	if err != nil {
		return Result{}, err
	}
	if err := c.active().SubjectColors.Set(name, v); err != nil {
		return Result{}, err
	}
	if subject.Canonicalize(c.state.UI.Subject) == subject.Canonicalize(name) {
		c.state.UI.Color = v
	}
	var res Result
	c.save(ctx, &res, true)
	return res, nil
}

// KnownSubjects returns the complete subjects of the active profile.
func (c *Controller) KnownSubjects() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return subject.FilterComplete(c.active().Subjects())
}

// HiddenSubjects returns the subjects KnownSubjects leaves out.
func (c *Controller) HiddenSubjects() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return subject.Hidden(c.active().Subjects())
}

// DeleteSubject removes a subject's cells from both plans and its colour.
func (c *Controller) DeleteSubject(ctx context.Context, name string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("delete subject"), nil
	}
	s := subject.Canonicalize(name)
	if s == "" {
		return Result{}, subject.ErrEmpty
	}

	reg, nae, colorRemoved := c.active().DeleteSubject(s)
	if reg+nae == 0 && !colorRemoved {
		return Result{}, fmt.Errorf("%w: %q", ErrSubjectNotFound, s)
	}
	if subject.Canonicalize(c.state.UI.Subject) == s {
		c.state.UI.Subject = ""
	}
	c.state.UI.Anchor = nil

	res := Result{Erased: reg + nae}
	c.log.Debug("delete subject", "subject", s, "regular", reg, "naesin", nae)
	c.save(ctx, &res, true)
	return res, nil
}

// CleanupHidden deletes every hidden subject and its cells. It returns the
// subjects removed.
func (c *Controller) CleanupHidden(ctx context.Context) (Result, []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("cleanup subjects"), nil
	}
	p := c.active()
	hidden := subject.Hidden(p.Subjects())
	if len(hidden) == 0 {
		return Result{}, nil
	}

	var res Result
	selected := subject.Canonicalize(c.state.UI.Subject)
	for _, s := range hidden {
		reg, nae, _ := p.DeleteSubject(s)
		res.Erased += reg + nae
		if selected == s {
			c.state.UI.Subject = ""
		}
	}
	c.state.UI.Anchor = nil
	c.log.Debug("cleanup subjects", "subjects", len(hidden), "cells", res.Erased)
	c.save(ctx, &res, true)
	return res, hidden
}
