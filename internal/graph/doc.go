// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

// Package graph holds the bipartite user/product purchase graph.
//
// # Model
//
// The Graph is an arena of entities keyed by integer id: one map for users,
// one for products. Adjacency is stored on both sides as sets of ids and is
// resolved through the Graph at read time, so entities never reference each
// other directly.
//
//	g := graph.NewGraph()
//	g.AddUser(1, "Alice")
//	g.AddProduct(10, "Keyboard")
//	g.AddPurchase(1, 10)
//
//	stats := g.Statistics() // {Users:1 Products:1 Purchases:1}
//
// # Semantics
//
//   - AddUser and AddProduct are idempotent and never overwrite an existing name.
//   - AddPurchase is a no-op unless both endpoints already exist.
//   - Lookups return (nil, false) for unknown ids; nothing in this package
//     returns an error or panics on input within its parameter types.
//
// # Thread Safety
//
// Graph has no internal locking. Callers that share a Graph across goroutines
// wrap it in a Guarded, which serializes writers behind a single RWMutex.
package graph
