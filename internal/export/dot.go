// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tomtom215/basketgraph/internal/graph"
)

// GraphName is the identifier of the emitted DOT graph.
const GraphName = "GrapheBiparti"

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// WriteDOT writes g to w in DOT format.
func WriteDOT(w io.Writer, g *graph.Graph) error {
	var b strings.Builder

	fmt.Fprintf(&b, "graph %s {\n", GraphName)
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [fontname=\"Arial\"];\n")

	for _, u := range g.Users() {
		fmt.Fprintf(&b, "  \"U%d\" [label=\"%s\", shape=ellipse, style=filled, fillcolor=lightblue, color=blue];\n",
			u.ID, labelEscaper.Replace(u.Name))
	}
	for _, p := range g.Products() {
		fmt.Fprintf(&b, "  \"P%d\" [label=\"%s\", shape=box, style=filled, fillcolor=lightgreen, color=green];\n",
			p.ID, labelEscaper.Replace(p.Name))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "  \"U%d\" -- \"P%d\";\n", e.UserID, e.ProductID)
	}
	b.WriteString("}")

	_, err := io.WriteString(w, b.String())
	return err
}

// DOT returns g in DOT format.
func DOT(g *graph.Graph) string {
	var b strings.Builder
	_ = WriteDOT(&b, g) // strings.Builder never fails
	return b.String()
}

// WriteDOTFile writes g to path, creating parent directories as needed.
func WriteDOTFile(g *graph.Graph, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return fmt.Errorf("create dot file: %w", err)
	}

	if err := WriteDOT(f, g); err != nil {
		_ = f.Close()
		return fmt.Errorf("write dot file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close dot file: %w", err)
	}
	return nil
}
