package profile

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// StateKey is the storage key of the persisted state document.
const StateKey = "timegrid-schedule-v4"

// ErrNotFound is returned by a Store when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Store is a string-keyed blob store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Load reads and repairs the state document. A missing document yields a
// fresh state; only store failures are returned as errors.
func Load(ctx context.Context, store Store, defaults Settings, now time.Time) (*State, []string, error) {
	data, err := store.Get(ctx, StateKey)
	if errors.Is(err, ErrNotFound) {
		return NewState(defaults, now), nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading state: %w", err)
	}
	st, notes := Decode(data, defaults, now)
	return st, notes, nil
}

// Save encodes and writes the state document.
func Save(ctx context.Context, store Store, s *State) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, StateKey, data); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}
