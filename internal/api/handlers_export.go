// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/basketgraph/internal/export"
	"github.com/tomtom215/basketgraph/internal/graph"
	"github.com/tomtom215/basketgraph/internal/logging"
)

// GraphDOT handles GET /api/v1/graph.dot
func (h *Handler) GraphDOT(w http.ResponseWriter, r *http.Request) {
	var dot string
	h.store.Read(func(g *graph.Graph) {
		dot = export.DOT(g)
	})

	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="graphe.dot"`)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(dot)); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write DOT response")
	}
}

// GraphVisualize handles GET /api/v1/graph/visualize
// Returns the GraphvizOnline link for the current graph, or redirects to it
// when redirect=true.
func (h *Handler) GraphVisualize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var (
		dot   string
		empty bool
	)
	h.store.Read(func(g *graph.Graph) {
		empty = g.IsEmpty()
		dot = export.DOT(g)
	})

	if empty {
		respondError(w, http.StatusConflict, "GRAPH_EMPTY", "Graph is empty; load data first", nil)
		return
	}

	link := export.GraphvizOnlineURL(h.config.Export.GraphvizURL, dot)
	if boolQueryParam(r, "redirect") {
		http.Redirect(w, r, link, http.StatusFound)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]string{"url": link}, 0, start)
}
