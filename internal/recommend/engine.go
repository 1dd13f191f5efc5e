// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/basketgraph/internal/graph"
	"github.com/tomtom215/basketgraph/internal/metrics"
)

// Engine answers similarity queries against a purchase graph.
type Engine struct {
	graph  *graph.Graph
	config *Config
	logger zerolog.Logger
}

// NewEngine creates a recommendation engine reading from g.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(g *graph.Graph, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("graph is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		graph:  g,
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Similarity returns the Jaccard similarity of two users by id. The boolean
// is false when either id is unknown.
func (e *Engine) Similarity(aID, bID int) (float64, bool) {
	a, ok := e.graph.GetUser(aID)
	if !ok {
		return 0, false
	}
	b, ok := e.graph.GetUser(bID)
	if !ok {
		return 0, false
	}
	return JaccardSimilarity(a, b), true
}

// NearestNeighbors returns up to k users most similar to targetID, excluding
// the target and anyone with zero similarity. Ties are broken by ascending
// user id. An unknown target or k < 1 yields an empty result.
func (e *Engine) NearestNeighbors(targetID, k int) []Neighbor {
	start := time.Now()

	target, ok := e.graph.GetUser(targetID)
	if !ok || k < 1 {
		e.record(OpNeighbors, targetID, ok, 0, start)
		return []Neighbor{}
	}

	neighbors := e.rankNeighbors(target)
	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}

	e.record(OpNeighbors, targetID, true, len(neighbors), start)
	return neighbors
}

// rankNeighbors scores every user sharing at least one product with target.
// Users sharing nothing have similarity 0 and are never candidates.
func (e *Engine) rankNeighbors(target *graph.User) []Neighbor {
	candidates := make(map[int]struct{})
	target.ForEachPurchase(func(pid int) {
		p, ok := e.graph.GetProduct(pid)
		if !ok {
			return
		}
		p.ForEachBuyer(func(uid int) {
			if uid != target.ID {
				candidates[uid] = struct{}{}
			}
		})
	})

	neighbors := make([]Neighbor, 0, len(candidates))
	for uid := range candidates {
		other, ok := e.graph.GetUser(uid)
		if !ok {
			continue
		}
		if sim := JaccardSimilarity(target, other); sim > 0 {
			neighbors = append(neighbors, Neighbor{User: other, Similarity: sim})
		}
	}

	// Sort by similarity (descending), then id (ascending)
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Similarity != neighbors[j].Similarity {
			return neighbors[i].Similarity > neighbors[j].Similarity
		}
		return neighbors[i].User.ID < neighbors[j].User.ID
	})

	return neighbors
}

// GenerateRecommendations scores products bought by the target's nearest
// neighbors but not by the target. Each neighbor adds its similarity to every
// such product. Results are ordered by score descending, then product id
// ascending. An unknown target yields an empty result.
func (e *Engine) GenerateRecommendations(targetID int) []Recommendation {
	start := time.Now()

	target, ok := e.graph.GetUser(targetID)
	if !ok {
		e.record(OpRecommendations, targetID, false, 0, start)
		return []Recommendation{}
	}

	neighbors := e.rankNeighbors(target)
	if len(neighbors) > e.config.RecommendNeighbors {
		neighbors = neighbors[:e.config.RecommendNeighbors]
	}

	// Accumulate in neighbor rank order so float sums are reproducible
	scores := make(map[int]float64)
	for _, n := range neighbors {
		n.User.ForEachPurchase(func(pid int) {
			if !target.HasPurchased(pid) {
				scores[pid] += n.Similarity
			}
		})
	}

	recs := make([]Recommendation, 0, len(scores))
	for pid, score := range scores {
		p, ok := e.graph.GetProduct(pid)
		if !ok {
			continue
		}
		recs = append(recs, Recommendation{Product: p, Score: score})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Product.ID < recs[j].Product.ID
	})

	e.logger.Debug().
		Int("user_id", targetID).
		Int("neighbors", len(neighbors)).
		Msg("neighbourhood aggregated")

	e.record(OpRecommendations, targetID, true, len(recs), start)
	return recs
}

func (e *Engine) record(op string, targetID int, known bool, returned int, start time.Time) {
	outcome := metrics.OutcomeHit
	switch {
	case !known:
		outcome = metrics.OutcomeUnknownUser
	case returned == 0:
		outcome = metrics.OutcomeEmpty
	}
	elapsed := time.Since(start)
	metrics.RecordRecommendQuery(op, outcome, elapsed)

	e.logger.Debug().
		Str("operation", op).
		Int("user_id", targetID).
		Str("outcome", outcome).
		Int("returned", returned).
		Dur("latency", elapsed).
		Msg("query complete")
}
