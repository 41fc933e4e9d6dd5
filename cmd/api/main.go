// Package main implements the HTTP API server for the documentation checklist.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dsjohal14/aidocs/internal/app"
	apihttp "github.com/dsjohal14/aidocs/internal/http"
	"github.com/dsjohal14/aidocs/internal/libs/config"
	"github.com/dsjohal14/aidocs/internal/libs/obs"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Init logger
	obs.InitLogger(cfg.LogLevel)
	logger := obs.Logger("api")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Open(ctx, cfg, obs.Logger("progress"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize")
	}
	defer func() { _ = a.Close() }()

	// Create HTTP handler
	handler := apihttp.NewHandler(a.Doc, a.Tracker, apihttp.Options{
		DefaultSection: cfg.DefaultSection,
		SnippetLength:  cfg.SnippetLength,
		SearchRPS:      cfg.SearchRPS,
	}, logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           apihttp.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("addr", srv.Addr).Msg("starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down API server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server failed")
		_ = a.Close()
		os.Exit(1)
	}
}
