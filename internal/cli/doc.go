// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

// Package cli implements the interactive console menu: load the purchase
// file, show statistics, open the graph in GraphvizOnline, run a
// recommendation for one user, and export the graph as DOT.
//
// The menu reads from an io.Reader and writes to an io.Writer so it can be
// driven by tests as well as by a terminal.
package cli
