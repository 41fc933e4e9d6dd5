package progress_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsjohal14/aidocs/internal/scope/progress"
)

var errSaveFailed = errors.New("disk full")

// failingStore wraps a MemoryStore and fails saves on demand
type failingStore struct {
	*progress.MemoryStore
	fail bool
}

func (s *failingStore) Save(ctx context.Context, p progress.Progress) error {
	if s.fail {
		return errSaveFailed
	}
	return s.MemoryStore.Save(ctx, p)
}

func TestTrackerLoadsOnce(t *testing.T) {
	ctx := context.Background()
	store := progress.NewMemoryStore()
	require.NoError(t, store.Save(ctx, progress.Progress{"a": true}))

	tr, err := progress.NewTracker(ctx, store, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, tr.Done("a"))
}

func TestTrackerToggleWritesThrough(t *testing.T) {
	ctx := context.Background()
	store := progress.NewMemoryStore()
	tr, err := progress.NewTracker(ctx, store, zerolog.Nop())
	require.NoError(t, err)

	done, err := tr.Toggle(ctx, "a")
	require.NoError(t, err)
	assert.True(t, done)

	stored, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, stored.Done("a"))

	done, err = tr.Toggle(ctx, "a")
	require.NoError(t, err)
	assert.False(t, done)
}

func TestTrackerRollsBackOnSaveFailure(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{MemoryStore: progress.NewMemoryStore()}
	tr, err := progress.NewTracker(ctx, store, zerolog.Nop())
	require.NoError(t, err)

	_, err = tr.Toggle(ctx, "a")
	require.NoError(t, err)

	store.fail = true
	done, err := tr.Toggle(ctx, "a")
	assert.ErrorIs(t, err, errSaveFailed)
	assert.True(t, done, "failed toggle reports the unchanged value")
	assert.True(t, tr.Done("a"))

	assert.ErrorIs(t, tr.Reset(ctx), errSaveFailed)
	assert.True(t, tr.Done("a"), "failed reset keeps state")

	store.fail = false
	require.NoError(t, tr.Reset(ctx))
	assert.Empty(t, tr.Snapshot())
}

func TestTrackerSnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	tr, err := progress.NewTracker(ctx, progress.NewMemoryStore(), zerolog.Nop())
	require.NoError(t, err)

	snap := tr.Snapshot()
	snap["x"] = true
	assert.False(t, tr.Done("x"))
}

func TestTrackerConcurrentToggles(t *testing.T) {
	ctx := context.Background()
	store := progress.NewMemoryStore()
	tr, err := progress.NewTracker(ctx, store, zerolog.Nop())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = tr.Toggle(ctx, "k")
		}()
	}
	wg.Wait()

	// an even number of flips lands back on false
	assert.False(t, tr.Done("k"))
	stored, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, tr.Snapshot(), stored)
}
