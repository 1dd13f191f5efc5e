// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

// Package recommend implements user-based collaborative filtering over the
// purchase graph.
//
// # Algorithm
//
// Similarity between two users is the Jaccard index of their purchase sets:
//
//	|purchases(a) ∩ purchases(b)| / |purchases(a) ∪ purchases(b)|
//
// Two users without purchases have similarity 0. NearestNeighbors ranks every
// other user with a strictly positive similarity. GenerateRecommendations takes
// the top neighbors (Config.RecommendNeighbors, 3 by default) and, for every
// product a neighbor bought that the target did not, adds the neighbor's
// similarity to that product's score.
//
// # Determinism
//
// Rankings are fully ordered: score descending, then id ascending. Results do
// not depend on map iteration order and are reproducible across runs.
//
// # Usage
//
//	engine, err := recommend.NewEngine(g, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	for _, n := range engine.NearestNeighbors(userID, 3) {
//	    fmt.Printf("%s %.2f\n", n.User.Name, n.Similarity)
//	}
//
// # Thread Safety
//
// The engine holds no mutable state and keeps no cache; every call recomputes
// from the current graph. It performs no locking, so callers sharing the graph
// run queries under graph.Guarded.Read.
package recommend
