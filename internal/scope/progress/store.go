package progress

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// DefaultSlot is the name progress is stored under
const DefaultSlot = "checklistProgress"

// ErrUnknownBackend is returned by Open for an unsupported DSN scheme
var ErrUnknownBackend = errors.New("unknown progress backend")

// Store persists one named progress slot
type Store interface {
	// Load returns the stored progress, or empty progress if nothing is stored
	Load(ctx context.Context) (Progress, error)

	// Save replaces the stored progress
	Save(ctx context.Context, p Progress) error

	// Close releases the store's resources
	Close() error
}

// Ensure every backend implements Store
var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*FileStore)(nil)
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*PostgresStore)(nil)
	_ Store = (*MongoStore)(nil)
)

// Open selects a backend from the DSN scheme:
//
//	memory://                    in-process
//	file://<dir> or a bare path  JSON file per slot
//	sqlite://<path>              SQLite database
//	postgres://..., postgresql://...
//	mongodb://..., mongodb+srv://...
func Open(ctx context.Context, dsn, slot string, logger zerolog.Logger) (Store, error) {
	if slot == "" {
		slot = DefaultSlot
	}

	switch {
	case dsn == "memory://":
		return NewMemoryStore(), nil
	case strings.HasPrefix(dsn, "file://"):
		return NewFileStore(strings.TrimPrefix(dsn, "file://"), slot, logger)
	case strings.HasPrefix(dsn, "sqlite://"):
		return NewSQLiteStore(ctx, strings.TrimPrefix(dsn, "sqlite://"), slot)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewPostgresStore(ctx, dsn, slot)
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		return NewMongoStore(ctx, dsn, slot)
	case strings.Contains(dsn, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, dsn[:strings.Index(dsn, "://")])
	case dsn == "":
		return nil, fmt.Errorf("progress DSN is required")
	default:
		return NewFileStore(dsn, slot, logger)
	}
}

// MemoryStore keeps progress in process memory
type MemoryStore struct {
	mu sync.Mutex
	p  Progress
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{p: Progress{}}
}

// Load returns a copy of the stored progress
func (m *MemoryStore) Load(_ context.Context) (Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.p.Clone(), nil
}

// Save replaces the stored progress with a copy of p
func (m *MemoryStore) Save(_ context.Context, p Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.p = p.Clone()
	return nil
}

// Close is a no-op
func (m *MemoryStore) Close() error {
	return nil
}
