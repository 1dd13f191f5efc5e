// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
	"golang.org/x/time/rate"

	"github.com/tomtom215/basketgraph/internal/ingest"
	"github.com/tomtom215/basketgraph/internal/logging"
)

// FileLoader loads a purchase file into the graph.
// Satisfied by *ingest.Loader.
type FileLoader interface {
	LoadFile(ctx context.Context, path string) (*ingest.Stats, error)
}

// DataWatchConfig configures DataWatchService.
type DataWatchConfig struct {
	// Path is the purchase file.
	Path string

	// LoadOnStart loads Path once when the service starts.
	LoadOnStart bool

	// Watch reloads Path after it is written or recreated.
	Watch bool

	// Debounce is how long the file must stay quiet before a reload.
	Debounce time.Duration

	// MinInterval is the minimum spacing between two loads. Zero disables it.
	MinInterval time.Duration
}

// DataWatchService loads the purchase file into the graph and, when watching,
// reloads it after changes. Reloads are additive: ingestion is idempotent
// and the graph has no deletion, so lines removed from the file stay in the
// graph until restart.
//
// The parent directory is watched rather than the file so that editors that
// save by rename are still seen.
type DataWatchService struct {
	loader  FileLoader
	config  DataWatchConfig
	limiter *rate.Limiter
	logger  zerolog.Logger
	name    string

	readyOnce sync.Once
	ready     chan struct{}
}

// NewDataWatchService creates the service.
func NewDataWatchService(loader FileLoader, cfg DataWatchConfig) *DataWatchService {
	limit := rate.Inf
	if cfg.MinInterval > 0 {
		limit = rate.Every(cfg.MinInterval)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 100 * time.Millisecond
	}

	return &DataWatchService{
		loader:  loader,
		config:  cfg,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logging.WithComponent("data-watch"),
		name:    "data-watch",
		ready:   make(chan struct{}),
	}
}

// Ready is closed once the initial load is done and, when watching, the
// watcher is registered.
func (s *DataWatchService) Ready() <-chan struct{} {
	return s.ready
}

// Serve implements suture.Service. Without Watch it returns
// suture.ErrDoNotRestart after the initial load.
func (s *DataWatchService) Serve(ctx context.Context) error {
	if s.config.LoadOnStart {
		_ = s.limiter.Allow()
		s.load(ctx, "startup")
	}

	if !s.config.Watch {
		s.markReady()
		return suture.ErrDoNotRestart
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(s.config.Path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	s.logger.Info().Str("path", target).Msg("Watching data file")
	s.markReady()

	debounce := time.NewTimer(s.config.Debounce)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("file watcher closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				debounce.Reset(s.config.Debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("file watcher closed")
			}
			s.logger.Warn().Err(err).Msg("File watcher error")

		case <-debounce.C:
			res := s.limiter.Reserve()
			if delay := res.Delay(); delay > 0 {
				res.Cancel()
				debounce.Reset(delay)
				continue
			}
			s.load(ctx, "file changed")
		}
	}
}

// load runs one load and logs the outcome. Failures are not returned: a
// missing or unreadable file must not take the service down.
func (s *DataWatchService) load(ctx context.Context, reason string) {
	stats, err := s.loader.LoadFile(ctx, s.config.Path)
	if err != nil {
		event := s.logger.Error()
		if errors.Is(err, os.ErrNotExist) {
			event = s.logger.Warn()
		}
		event.Err(err).Str("path", s.config.Path).Str("reason", reason).Msg("Data file load failed")
		return
	}

	s.logger.Info().
		Str("path", s.config.Path).
		Str("reason", reason).
		Int("imported", stats.Imported).
		Int("rejected", stats.Rejected).
		Msg("Data file loaded")
}

func (s *DataWatchService) markReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *DataWatchService) String() string {
	return s.name
}
