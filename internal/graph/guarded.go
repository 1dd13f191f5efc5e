// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package graph

import "sync"

// Guarded serializes access to a shared Graph with a single RWMutex.
// Queries run under Read, ingestion under Write.
type Guarded struct {
	mu sync.RWMutex
	g  *Graph
}

// NewGuarded wraps g. A nil graph is replaced with an empty one.
func NewGuarded(g *Graph) *Guarded {
	if g == nil {
		g = NewGraph()
	}
	return &Guarded{g: g}
}

// Read runs fn with shared access. fn must not retain the graph.
func (s *Guarded) Read(fn func(g *Graph)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.g)
}

// Write runs fn with exclusive access.
func (s *Guarded) Write(fn func(g *Graph)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.g)
}

// Statistics is a convenience for a read-locked Graph.Statistics.
func (s *Guarded) Statistics() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.Statistics()
}

// Ingest applies one record under the write lock.
func (s *Guarded) Ingest(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.Ingest(rec)
}
