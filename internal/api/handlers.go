// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package api

import (
	"time"

	"github.com/tomtom215/basketgraph/internal/config"
	"github.com/tomtom215/basketgraph/internal/graph"
	"github.com/tomtom215/basketgraph/internal/ingest"
	"github.com/tomtom215/basketgraph/internal/recommend"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: health and ingest status
//   - handlers_graph.go: statistics, listings, single user, purchase submission
//   - handlers_recommend.go: neighbours and recommendations
//   - handlers_export.go: DOT source and GraphvizOnline link
type Handler struct {
	store     *graph.Guarded
	engine    *recommend.Engine
	tracker   *ingest.StatsTracker
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates a handler. The engine must have been built over the
// same *graph.Graph that store guards.
func NewHandler(store *graph.Guarded, engine *recommend.Engine, tracker *ingest.StatsTracker, cfg *config.Config, version string) *Handler {
	return &Handler{
		store:     store,
		engine:    engine,
		tracker:   tracker,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}
