package app

import (
	"context"
)

// CreateProfile adds an empty profile and activates it.
func (c *Controller) CreateProfile(ctx context.Context, name string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("create profile"), nil
	}
	p, err := c.state.Add(name, c.now())
	if err != nil {
		return Result{}, err
	}
	c.state.UI.Anchor = nil
	c.log.Debug("profile created", "id", p.ID, "name", p.Name)
	var res Result
	c.save(ctx, &res, false)
	return res, nil
}

// RenameProfile renames the active profile.
func (c *Controller) RenameProfile(ctx context.Context, name string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("rename profile"), nil
	}
	if err := c.state.Rename(name, c.now()); err != nil {
		return Result{}, err
	}
	var res Result
	c.save(ctx, &res, false)
	return res, nil
}

// DeleteProfile deletes the active profile. The last profile cannot be
// deleted.
func (c *Controller) DeleteProfile(ctx context.Context) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("delete profile"), nil
	}
	removed, err := c.state.Remove()
	if err != nil {
		return Result{}, err
	}
	c.state.UI.Anchor = nil
	c.log.Debug("profile deleted", "id", removed.ID, "name", removed.Name)
	var res Result
	c.save(ctx, &res, false)
	return res, nil
}

// SwitchProfile activates the profile with the given id or name.
func (c *Controller) SwitchProfile(ctx context.Context, idOrName string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Settings.Locked {
		return c.suppressed("switch profile"), nil
	}
	p, err := c.state.Lookup(idOrName)
	if err != nil {
		return Result{}, err
	}
	if err := c.state.Switch(p.ID); err != nil {
		return Result{}, err
	}
	c.state.UI.Anchor = nil
	var res Result
	c.save(ctx, &res, false)
	return res, nil
}
