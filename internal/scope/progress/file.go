package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// FileStore keeps one slot as a JSON object in <dir>/<slot>.json
type FileStore struct {
	path   string
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewFileStore creates a store rooted at dir, creating the directory if needed
func NewFileStore(dir, slot string, logger zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create progress directory: %w", err)
	}

	return &FileStore{
		path:   filepath.Join(dir, slot+".json"),
		logger: logger,
	}, nil
}

// Path returns the file backing the slot
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the slot. A missing or unparseable file yields empty progress.
func (s *FileStore) Load(_ context.Context) (Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Progress{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read progress: %w", err)
	}

	var p Progress
	if err := json.Unmarshal(data, &p); err != nil || p == nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("ignoring unreadable progress file")
		return Progress{}, nil
	}
	return p, nil
}

// Save writes the slot through a temp file and rename so readers never see
// a partial write
func (s *FileStore) Save(_ context.Context, p Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".progress-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write progress: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close progress: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace progress: %w", err)
	}
	return nil
}

// Close is a no-op; every Save is durable
func (s *FileStore) Close() error {
	return nil
}
