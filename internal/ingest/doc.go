// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

// Package ingest loads purchase relations from whitespace-separated text.
//
// # Format
//
// One purchase per line:
//
//	USER_ID USER_NAME PRODUCT_ID PRODUCT_NAME
//	1 Alice 101 Clavier mecanique
//	2 Sara 102 Souris sans fil
//
// A line is split into at most four fields, so the product name keeps its
// interior whitespace. User names are a single token. Blank lines are skipped.
//
// # Error Handling
//
// ParseLine returns a *ParseError for lines with fewer than four fields or
// non-integer ids. The loader logs each rejected line, counts it, keeps a
// bounded sample for reporting and moves on; one bad line never aborts a load.
// Only file-level failures (open, read) and context cancellation are returned
// as errors.
//
//	loader := ingest.NewLoader(store, tracker)
//	stats, err := loader.LoadFile(ctx, "donnees.txt")
//	if err != nil {
//	    return err
//	}
//	logging.Info().Int("imported", stats.Imported).Msg("done")
package ingest
