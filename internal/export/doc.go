// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

// Package export renders the purchase graph in Graphviz DOT form and hands
// it to viewers.
//
// Users are drawn as blue ellipses ("U<id>"), products as green boxes
// ("P<id>"), and each purchase as an undirected edge. Nodes and edges are
// emitted in ascending id order, so the same graph always yields the same
// bytes.
//
//	dot := export.DOT(g)
//	url := export.GraphvizOnlineURL("", dot)
//	if err := export.OpenBrowser(ctx, url); err != nil {
//	    fmt.Println(url)
//	}
package export
