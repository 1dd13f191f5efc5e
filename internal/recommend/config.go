// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package recommend

import (
	"fmt"
)

// Config contains the neighbourhood sizes used by the engine.
type Config struct {
	// DefaultNeighbors is the k used when a caller asks for neighbors
	// without choosing one.
	DefaultNeighbors int `json:"default_neighbors"`

	// MaxNeighbors caps caller-supplied k values at the API boundary.
	MaxNeighbors int `json:"max_neighbors"`

	// RecommendNeighbors is the fixed neighbourhood size used by
	// GenerateRecommendations.
	RecommendNeighbors int `json:"recommend_neighbors"`
}

// DefaultConfig returns the neighbourhood sizes of the reference behavior.
func DefaultConfig() *Config {
	return &Config{
		DefaultNeighbors:   3,
		MaxNeighbors:       100,
		RecommendNeighbors: 3,
	}
}

// Validate checks that every neighbourhood size is usable.
func (c *Config) Validate() error {
	if c.DefaultNeighbors < 1 {
		return fmt.Errorf("recommend.neighbors must be positive, got %d", c.DefaultNeighbors)
	}
	if c.RecommendNeighbors < 1 {
		return fmt.Errorf("recommend.recommend_neighbors must be positive, got %d", c.RecommendNeighbors)
	}
	if c.MaxNeighbors < c.DefaultNeighbors {
		return fmt.Errorf("recommend.max_neighbors (%d) must be >= neighbors (%d)",
			c.MaxNeighbors, c.DefaultNeighbors)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
