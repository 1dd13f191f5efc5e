// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

/*
Package api exposes the purchase graph and the recommendation engine over
HTTP/JSON using the chi router.

Routes (all JSON unless noted):

	GET  /api/v1/health
	GET  /api/v1/stats
	GET  /api/v1/users
	GET  /api/v1/users/{userID}
	GET  /api/v1/users/{userID}/neighbors?k=3
	GET  /api/v1/users/{userID}/recommendations
	GET  /api/v1/products
	POST /api/v1/purchases
	GET  /api/v1/ingest/status
	GET  /api/v1/graph.dot          (text/vnd.graphviz)
	GET  /api/v1/graph/visualize    (?redirect=true answers 302)
	GET  /metrics                   (Prometheus exposition)

Every JSON payload is wrapped in models.APIResponse. The graph is shared with
the data-file watcher, so handlers read it under graph.Guarded's read lock and
the purchase endpoint writes under its write lock.
*/
package api
