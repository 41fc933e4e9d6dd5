package progress

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Tracker owns the current progress and writes every change through to its
// store. Concurrent writers are serialized; the last write wins.
type Tracker struct {
	mu     sync.Mutex
	store  Store
	state  Progress
	logger zerolog.Logger
}

// NewTracker loads the stored progress once
func NewTracker(ctx context.Context, store Store, logger zerolog.Logger) (*Tracker, error) {
	p, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	logger.Debug().Int("keys", len(p)).Msg("progress loaded")
	return &Tracker{store: store, state: p, logger: logger}, nil
}

// Snapshot returns a copy of the current progress
func (t *Tracker) Snapshot() Progress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Clone()
}

// Done reports whether key is completed
func (t *Tracker) Done(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Done(key)
}

// Toggle flips key, persists, and returns the new value. On a failed save
// the in-memory state is left unchanged.
func (t *Tracker) Toggle(ctx context.Context, key string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := Toggle(t.state, key)
	if err := t.store.Save(ctx, next); err != nil {
		return t.state.Done(key), fmt.Errorf("failed to save progress: %w", err)
	}

	t.state = next
	t.logger.Debug().Str("key", key).Bool("done", next[key]).Msg("item toggled")
	return next[key], nil
}

// Reset clears all progress and persists the empty state
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := Reset()
	if err := t.store.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	t.state = next
	t.logger.Info().Msg("progress reset")
	return nil
}

// Close closes the underlying store
func (t *Tracker) Close() error {
	return t.store.Close()
}
