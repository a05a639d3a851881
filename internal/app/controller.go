// Package app owns the application state and applies every user intent to
// it: grid edits, subject and colour selection, settings and profiles.
// Each mutation is persisted before the call returns.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/javiermolinar/timegrid/internal/profile"
	"github.com/javiermolinar/timegrid/internal/schedule"
)

// Validation errors.
var (
	ErrComposing         = errors.New("subject is still being typed")
	ErrSlotMinutesLocked = errors.New("slot duration cannot change while any profile has cells")
	ErrEntryNotFound     = errors.New("no entry starts at that slot")
	ErrConflictNotFound  = errors.New("no conflict starts at that slot")
	ErrSubjectNotFound   = errors.New("subject not found")
)

// Result describes the effect of one operation.
type Result struct {
	// Changed is true when the state was modified and saved.
	Changed  bool
	Painted  int
	Blocked  int
	Erased   int
	Anchored bool
	// Suppressed is true when the operation was ignored because the
	// editor is locked.
	Suppressed bool
	// Warning holds a persistence failure. The in-memory state still
	// reflects the operation.
	Warning error
}

// Controller serialises all access to the state.
type Controller struct {
	mu    sync.Mutex
	state *profile.State
	store profile.Store
	log   *log.Logger
	now   func() time.Time

	composing bool
}

// Open loads the state from store, repairing it if needed, and returns a
// controller over it. defaults seed a state that was never saved.
func Open(ctx context.Context, store profile.Store, defaults profile.Settings, logger *log.Logger) (*Controller, error) {
	st, notes, err := profile.Load(ctx, store, defaults, time.Now())
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		logger.Warn("state repaired", "detail", n)
	}
	return New(st, store, logger, nil), nil
}

// New returns a controller over an already loaded state. now defaults to
// time.Now.
func New(st *profile.State, store profile.Store, logger *log.Logger, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{
		state: st,
		store: store,
		log:   logger,
		now:   now,
	}
}

// Close releases the store.
func (c *Controller) Close() error {
	return c.store.Close()
}

// Snapshot returns a copy of the state for rendering.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return newSnapshot(c.state, c.composing)
}

// Locked reports whether editing is disabled.
func (c *Controller) Locked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Settings.Locked
}

func (c *Controller) active() *profile.Profile {
	return c.state.Active()
}

func (c *Controller) grid() *schedule.Grid {
	return c.active().Grid(c.state.Settings.SlotMinutes)
}

// checkSlot validates a user supplied address against the current grid.
func (c *Controller) checkSlot(day, slot int) error {
	if day < 0 || day >= schedule.DaysPerWeek {
		return fmt.Errorf("%w: %d", schedule.ErrInvalidDay, day)
	}
	if n := schedule.SlotCount(c.state.Settings.SlotMinutes); slot < 0 || slot >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", schedule.ErrInvalidSlot, slot, n)
	}
	return nil
}

func checkPlan(plan schedule.Plan) error {
	if !plan.Valid() {
		return fmt.Errorf("%w: %q", schedule.ErrInvalidPlan, plan)
	}
	return nil
}

func (c *Controller) suppressed(op string) Result {
	c.log.Debug("ignored while locked", "op", op)
	return Result{Suppressed: true}
}

// save persists the state and stamps the active profile when the
// operation changed its content.
func (c *Controller) save(ctx context.Context, res *Result, touchProfile bool) {
	if touchProfile {
		c.active().Touch(c.now())
	}
	res.Changed = true
	if err := profile.Save(ctx, c.store, c.state); err != nil {
		c.log.Warn("state not saved", "err", err)
		res.Warning = err
	}
}
