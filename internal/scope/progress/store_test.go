package progress_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsjohal14/aidocs/internal/scope/progress"
)

// exerciseStore runs the behavior every backend must share
func exerciseStore(t *testing.T, store progress.Store) {
	t.Helper()
	ctx := context.Background()

	p, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, p, "fresh store should load empty progress")

	want := progress.Progress{"a-one": true, "a-two": false}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, store.Save(ctx, progress.Reset()))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, progress.NewMemoryStore())
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	store := progress.NewMemoryStore()

	p := progress.Progress{"k": true}
	require.NoError(t, store.Save(ctx, p))
	p["k"] = false

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.Done("k"), "store must not alias the saved map")
}

func TestFileStore(t *testing.T) {
	store, err := progress.NewFileStore(t.TempDir(), "slot", zerolog.Nop())
	require.NoError(t, err)
	exerciseStore(t, store)
}

func TestFileStorePersists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := progress.NewFileStore(dir, progress.DefaultSlot, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, progress.Progress{"x-y": true}))
	assert.Equal(t, filepath.Join(dir, "checklistProgress.json"), first.Path())

	second, err := progress.NewFileStore(dir, progress.DefaultSlot, zerolog.Nop())
	require.NoError(t, err)
	got, err := second.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.Done("x-y"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should not be left behind")
}

func TestFileStoreUnparseable(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"garbage", "{not json"},
		{"wrong shape", `["a", "b"]`},
		{"null", "null"},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "slot.json"), []byte(tt.data), 0644))

			store, err := progress.NewFileStore(dir, "slot", zerolog.Nop())
			require.NoError(t, err)

			p, err := store.Load(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, p)
			assert.Empty(t, p)
		})
	}
}

func TestSQLiteStore(t *testing.T) {
	store, err := progress.NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "progress.db"), "slot")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	exerciseStore(t, store)
}

func TestSQLiteStoreSlotsAreIndependent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "progress.db")

	a, err := progress.NewSQLiteStore(ctx, path, "a")
	require.NoError(t, err)
	require.NoError(t, a.Save(ctx, progress.Progress{"k": true}))
	require.NoError(t, a.Close())

	b, err := progress.NewSQLiteStore(ctx, path, "b")
	require.NoError(t, err)
	defer func() { _ = b.Close() }()

	got, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("PROGRESS_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("PROGRESS_TEST_POSTGRES_DSN not set")
	}

	store, err := progress.NewPostgresStore(context.Background(), dsn, "test-"+t.Name())
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	exerciseStore(t, store)
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("PROGRESS_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("PROGRESS_TEST_MONGO_URI not set")
	}

	store, err := progress.NewMongoStore(context.Background(), uri, "test-"+t.Name())
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	exerciseStore(t, store)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name string
		dsn  string
		want any
	}{
		{"memory", "memory://", &progress.MemoryStore{}},
		{"file scheme", "file://" + dir, &progress.FileStore{}},
		{"bare path", filepath.Join(dir, "bare"), &progress.FileStore{}},
		{"sqlite", "sqlite://" + filepath.Join(dir, "p.db"), &progress.SQLiteStore{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := progress.Open(ctx, tt.dsn, "", zerolog.Nop())
			require.NoError(t, err)
			defer func() { _ = store.Close() }()
			assert.IsType(t, tt.want, store)
		})
	}
}

func TestOpenErrors(t *testing.T) {
	_, err := progress.Open(context.Background(), "redis://localhost", "", zerolog.Nop())
	assert.ErrorIs(t, err, progress.ErrUnknownBackend)

	_, err = progress.Open(context.Background(), "", "", zerolog.Nop())
	assert.Error(t, err)
}
