// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package recommend

import "github.com/tomtom215/basketgraph/internal/graph"

// Operation names used for logging and metrics.
const (
	OpNeighbors       = "neighbors"
	OpRecommendations = "recommendations"
)

// Neighbor is a user ranked by similarity to a target user.
type Neighbor struct {
	User       *graph.User
	Similarity float64
}

// Recommendation is a product ranked by accumulated neighbor similarity.
// Score is a confidence-weighted vote, not a probability.
type Recommendation struct {
	Product *graph.Product
	Score   float64
}
