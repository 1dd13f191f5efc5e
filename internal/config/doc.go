// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

/*
Package config loads basketgraph configuration from layered sources.

Values are resolved in three layers, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: the path given on the command line, else
    $CONFIG_PATH, else the first of DefaultConfigPaths that exists
 3. Environment variables, mapped explicitly by envTransformFunc

Example file:

	server:
	  host: 127.0.0.1
	  port: 8080
	data:
	  path: donnees.txt
	  watch: true
	recommend:
	  neighbors: 3
	logging:
	  level: debug
	  format: console

Example environment:

	HTTP_PORT=9090 DATA_PATH=/srv/purchases.txt LOG_LEVEL=debug basketgraph serve

Environment variables that are not in the mapping table are ignored.
Comma-separated values are split for slice fields such as CORS_ORIGINS.

Validate runs after loading; Load never returns an invalid Config.
*/
package config
