// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

// Package services adapts the server's long-running components to
// suture.Service so they can be supervised.
//
//   - HTTPServerService: runs an *http.Server and shuts it down gracefully
//   - DataWatchService: loads the purchase file and reloads it on change
package services
