// Package app wires configuration, content and progress storage together
// for the command-line entry points.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dsjohal14/aidocs/internal/libs/config"
	"github.com/dsjohal14/aidocs/internal/scope/content"
	"github.com/dsjohal14/aidocs/internal/scope/guide"
	"github.com/dsjohal14/aidocs/internal/scope/progress"
)

// App holds the loaded document and the progress tracker
type App struct {
	Config  *config.Config
	Doc     *content.Document
	Tracker *progress.Tracker
	Logger  zerolog.Logger
}

// Open loads the embedded document, checks the guided walk against it and
// connects the progress store named by cfg.ProgressDSN
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	doc, err := content.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	if err := guide.Validate(doc); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	store, err := progress.Open(ctx, cfg.ProgressDSN, cfg.ProgressSlot, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open progress store: %w", err)
	}

	tracker, err := progress.NewTracker(ctx, store, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	logger.Info().
		Int("sections", doc.Len()).
		Str("fingerprint", fmt.Sprintf("%016x", doc.Fingerprint())).
		Str("slot", cfg.ProgressSlot).
		Msg("documentation loaded")

	return &App{Config: cfg, Doc: doc, Tracker: tracker, Logger: logger}, nil
}

// Close releases the progress store
func (a *App) Close() error {
	return a.Tracker.Close()
}
