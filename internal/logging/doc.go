// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

// Package logging provides zerolog-based structured logging for basketgraph.
//
// One global logger is configured at startup and shared by every package.
// JSON output is the default; the console format is meant for interactive
// use, where the menu prints to stdout and logs go to stderr.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	logging.Info().Str("path", path).Msg("Loading data file")
//	logging.Warn().Int("line", n).Str("reason", "too few fields").Msg("Skipping line")
//
// # Context
//
// HTTP handlers log through Ctx, which adds request_id and correlation_id
// when the request middleware has stored them:
//
//	logging.Ctx(r.Context()).Info().Int("user_id", id).Msg("Recommendations served")
//
// # Components
//
// Long-lived objects take a component logger:
//
//	logger := logging.WithComponent("ingest")
//
// # slog
//
// SlogHandler adapts zerolog to log/slog for libraries that only accept an
// *slog.Logger. The supervisor tree uses it to feed sutureslog.
//
// # Usage
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
