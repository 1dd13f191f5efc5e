// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package ingest

import (
	"sync"
	"time"
)

// maxErrorSamples bounds the rejected-line messages kept per load.
const maxErrorSamples = 20

// Stats describes one load.
type Stats struct {
	// Source is the file path, or "stream" for readers.
	Source string `json:"source"`

	// Lines is the number of lines read, blank lines included.
	Lines int `json:"lines"`

	// Imported is the number of records fed to the graph.
	Imported int `json:"imported"`

	// Blank is the number of empty lines skipped.
	Blank int `json:"blank"`

	// Rejected is the number of malformed lines skipped.
	Rejected int `json:"rejected"`

	// Errors holds up to maxErrorSamples rejection messages.
	Errors []string `json:"errors,omitempty"`

	// StartTime is when the load started.
	StartTime time.Time `json:"start_time"`

	// EndTime is when the load finished (zero while running).
	EndTime time.Time `json:"end_time"`
}

// Duration returns the duration of the load.
func (s *Stats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

func (s *Stats) reject(err error) {
	s.Rejected++
	if len(s.Errors) < maxErrorSamples {
		s.Errors = append(s.Errors, err.Error())
	}
}

// StatsTracker remembers the most recent load. It is safe for concurrent use.
type StatsTracker struct {
	mu    sync.RWMutex
	stats *Stats
}

// NewStatsTracker creates an empty tracker.
func NewStatsTracker() *StatsTracker {
	return &StatsTracker{}
}

// Save stores a copy of stats.
func (t *StatsTracker) Save(stats *Stats) {
	statsCopy := *stats
	statsCopy.Errors = append([]string(nil), stats.Errors...)

	t.mu.Lock()
	t.stats = &statsCopy
	t.mu.Unlock()
}

// Last returns a copy of the most recent stats, or nil if nothing was loaded.
func (t *StatsTracker) Last() *Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.stats == nil {
		return nil
	}
	statsCopy := *t.stats
	statsCopy.Errors = append([]string(nil), t.stats.Errors...)
	return &statsCopy
}
