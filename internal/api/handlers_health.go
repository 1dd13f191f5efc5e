// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/basketgraph/internal/models"
)

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	status := models.HealthStatus{
		Status:      "healthy",
		Version:     h.version,
		Uptime:      time.Since(h.startTime).Seconds(),
		GraphLoaded: h.store.Statistics().Users > 0,
	}
	if last := h.tracker.Last(); last != nil && !last.EndTime.IsZero() {
		status.LastIngest = &last.EndTime
	}

	respondSuccess(w, http.StatusOK, status, 0, start)
}

// IngestStatus handles GET /api/v1/ingest/status
// Returns the statistics of the most recent data-file load.
func (h *Handler) IngestStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	last := h.tracker.Last()
	if last == nil {
		respondError(w, http.StatusNotFound, "NO_INGEST", "No data file has been loaded yet", nil)
		return
	}

	respondSuccess(w, http.StatusOK, last, 0, start)
}
