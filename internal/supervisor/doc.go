// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

/*
Package supervisor runs the long-lived parts of the server under a suture
supervisor tree.

Tree layout:

	basketgraph (root)
	├── data-layer
	│   └── data-watch     (initial load + reload on file change)
	└── api-layer
	    └── http-server

A service that returns an error is restarted with backoff; a crash in the
data layer does not stop the HTTP server from answering from the graph it
already holds. Supervisor events are logged through sutureslog and the
zerolog slog adapter.
*/
package supervisor
