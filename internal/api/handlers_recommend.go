// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/basketgraph/internal/graph"
	"github.com/tomtom215/basketgraph/internal/models"
	"github.com/tomtom215/basketgraph/internal/validation"
)

// Neighbors handles GET /api/v1/users/{userID}/neighbors?k=
// k defaults to recommend.neighbors and is capped by recommend.max_neighbors.
func (h *Handler) Neighbors(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	cfg := h.engine.Config()
	k, err := intQueryParam(r, "k", cfg.DefaultNeighbors)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), nil)
		return
	}

	req := models.NeighborsRequest{UserID: id, K: k}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}
	if req.K > cfg.MaxNeighbors {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("k must be at most %d", cfg.MaxNeighbors), nil)
		return
	}

	var (
		results []models.NeighborResult
		found   bool
	)
	h.store.Read(func(g *graph.Graph) {
		if _, found = g.GetUser(req.UserID); !found {
			return
		}
		neighbors := h.engine.NearestNeighbors(req.UserID, req.K)
		results = make([]models.NeighborResult, len(neighbors))
		for i, n := range neighbors {
			results[i] = models.NeighborResult{
				UserID:     n.User.ID,
				UserName:   n.User.Name,
				Similarity: n.Similarity,
			}
		}
	})

	if !found {
		userNotFound(w, req.UserID)
		return
	}
	respondSuccess(w, http.StatusOK, results, len(results), start)
}

// Recommendations handles GET /api/v1/users/{userID}/recommendations
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var (
		results []models.RecommendationResult
		found   bool
	)
	h.store.Read(func(g *graph.Graph) {
		if _, found = g.GetUser(id); !found {
			return
		}
		recs := h.engine.GenerateRecommendations(id)
		results = make([]models.RecommendationResult, len(recs))
		for i, rec := range recs {
			results[i] = models.RecommendationResult{
				ProductID:   rec.Product.ID,
				ProductName: rec.Product.Name,
				Score:       rec.Score,
			}
		}
	})

	if !found {
		userNotFound(w, id)
		return
	}
	respondSuccess(w, http.StatusOK, results, len(results), start)
}
