// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

/*
Package main is the entry point for basketgraph.

basketgraph builds a bipartite graph of users and the products they bought
from a plain text purchase file, and recommends products to a user from the
purchases of their most similar users (Jaccard user-based kNN).

# Commands

	basketgraph [-config path] menu                 interactive console (default)
	basketgraph [-config path] serve                HTTP API under supervision
	basketgraph [-config path] recommend -user N    print one recommendation block
	basketgraph [-config path] export [-o path]     write the graph as DOT
	basketgraph version

# Serve Architecture

	RootSupervisor ("basketgraph")
	├── DataSupervisor ("data-layer")
	│   └── data-watch (initial load, fsnotify reloads)
	└── APISupervisor ("api-layer")
	    └── http-server (chi router)

Configuration is loaded with koanf from defaults, an optional YAML file and
environment variables. See internal/config for every key.
*/
package main
