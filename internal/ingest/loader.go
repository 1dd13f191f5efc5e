// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/basketgraph/internal/graph"
	"github.com/tomtom215/basketgraph/internal/logging"
	"github.com/tomtom215/basketgraph/internal/metrics"
)

// maxLineBytes is the longest accepted line.
const maxLineBytes = 1024 * 1024

// Sink receives parsed records. *graph.Graph and *graph.Guarded satisfy it.
type Sink interface {
	Ingest(rec graph.Record)
	Statistics() graph.Stats
}

// Loader feeds purchase lines into a Sink.
type Loader struct {
	sink    Sink
	tracker *StatsTracker
	logger  zerolog.Logger
}

// NewLoader creates a loader. tracker may be nil.
func NewLoader(sink Sink, tracker *StatsTracker) *Loader {
	return &Loader{
		sink:    sink,
		tracker: tracker,
		logger:  logging.WithComponent("ingest"),
	}
}

// LoadFile opens path and loads it.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Stats, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			l.logger.Warn().Err(closeErr).Str("path", path).Msg("Error closing data file")
		}
	}()

	return l.load(ctx, f, path)
}

// Load reads purchase lines from r.
func (l *Loader) Load(ctx context.Context, r io.Reader) (*Stats, error) {
	return l.load(ctx, r, "stream")
}

func (l *Loader) load(ctx context.Context, r io.Reader, source string) (*Stats, error) {
	stats := &Stats{Source: source, StartTime: time.Now()}
	logger := l.logger.With().Str("source", source).Logger()
	logger.Info().Msg("Loading purchases")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var loadErr error
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			loadErr = err
			break
		}

		stats.Lines++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			stats.Blank++
			continue
		}

		rec, err := ParseLine(stats.Lines, line)
		if err != nil {
			stats.reject(err)
			logRejected(logger, err)
			continue
		}

		l.sink.Ingest(rec)
		stats.Imported++
	}
	if loadErr == nil {
		if err := scanner.Err(); err != nil {
			loadErr = fmt.Errorf("read %s: %w", source, err)
		}
	}

	stats.EndTime = time.Now()
	l.finish(stats)

	event := logger.Info()
	if loadErr != nil {
		event = logger.Error().Err(loadErr)
	}
	event.
		Int("imported", stats.Imported).
		Int("rejected", stats.Rejected).
		Int("blank", stats.Blank).
		Dur("duration", stats.Duration()).
		Msg("Load finished")

	return stats, loadErr
}

func (l *Loader) finish(stats *Stats) {
	metrics.RecordIngest(stats.Imported, stats.Blank, stats.Rejected, stats.Duration())

	gs := l.sink.Statistics()
	metrics.UpdateGraphSize(gs.Users, gs.Products, gs.Purchases)

	if l.tracker != nil {
		l.tracker.Save(stats)
	}
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func logRejected(logger zerolog.Logger, err error) {
	var perr *ParseError
	if !errors.As(err, &perr) {
		logger.Warn().Err(err).Msg("Skipping line")
		return
	}

	event := logger.Warn()
	if !errors.Is(err, ErrTooFewFields) {
		event = logger.Error()
	}
	event.
		Int("line", perr.Line).
		Str("reason", perr.Reason.Error()).
		Str("text", perr.Text).
		Msg("Skipping line")
}
