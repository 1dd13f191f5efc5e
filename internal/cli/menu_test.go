// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/basketgraph/internal/graph"
	"github.com/tomtom215/basketgraph/internal/ingest"
	"github.com/tomtom215/basketgraph/internal/recommend"
)

const scenarioData = `1 A 10 X
1 A 11 Y
2 B 10 X
2 B 11 Y
2 B 12 Z
3 C 12 Z
not a record
`

type fixture struct {
	dir     string
	opened  []string
	openErr error
	out     bytes.Buffer
	store   *graph.Guarded
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{dir: t.TempDir()}
	if err := os.WriteFile(filepath.Join(f.dir, "donnees.txt"), []byte(scenarioData), 0o600); err != nil {
		t.Fatal(err)
	}
	return f
}

// run drives a fresh menu with the given input lines.
func (f *fixture) run(t *testing.T, lines ...string) string {
	t.Helper()

	g := graph.NewGraph()
	f.store = graph.NewGuarded(g)
	engine, err := recommend.NewEngine(g, nil, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	loader := ingest.NewLoader(f.store, ingest.NewStatsTracker())

	menu := NewMenu(strings.NewReader(strings.Join(lines, "\n")+"\n"), &f.out, f.store, engine, loader, Options{
		DataPath:    filepath.Join(f.dir, "donnees.txt"),
		DOTPath:     filepath.Join(f.dir, "out", "graphe.dot"),
		GraphvizURL: "https://viz.example.com/#",
		OpenBrowser: func(_ context.Context, target string) error {
			f.opened = append(f.opened, target)
			return f.openErr
		},
	})

	f.out.Reset()
	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return f.out.String()
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n--- output ---\n%s", want, out)
		}
	}
}

func TestMenu_LoadAndStatistics(t *testing.T) {
	f := newFixture(t)
	out := f.run(t, "1", "2", "0")

	assertContains(t, out,
		"RECOMMENDATION SYSTEM - BIPARTITE GRAPH",
		"[WARNING] line 7: too few fields",
		"[SUCCESS] Load finished. 6 relations imported.",
		" > Users     : 3",
		" > Products  : 3",
		" > Purchases : 6",
		"[INFO] Exiting. Goodbye.",
	)
}

func TestMenu_Recommend(t *testing.T) {
	f := newFixture(t)
	out := f.run(t, "1", "4", "1", "0")

	assertContains(t, out,
		"ID    | Name                 | Purchases",
		"1     | A                    | 2",
		"[ANALYSIS] Processing: A",
		"   - B (similarity: 0.67)",
		"   * Z                         (confidence: 0.67)",
	)
	if strings.Contains(out, "   - C (") {
		t.Error("C has no overlap with A and must not be listed as a neighbour")
	}
}

func TestMenu_RecommendErrors(t *testing.T) {
	f := newFixture(t)

	out := f.run(t, "4", "0")
	assertContains(t, out, "[!] WARNING: the graph is empty.")

	out = f.run(t, "1", "4", "abc", "4", "99", "0")
	assertContains(t, out,
		"[ERROR] Please enter a valid integer.",
		"[ERROR] User 99 does not exist in the graph.",
	)

	// D shares nothing with anyone.
	if err := os.WriteFile(filepath.Join(f.dir, "donnees.txt"), []byte(scenarioData+"4 D 13 W\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out = f.run(t, "1", "4", "4", "0")
	assertContains(t, out,
		"[ANALYSIS] Processing: D",
		"(no similar user found)",
		"[INFO] No relevant recommendation found.",
	)
}

func TestMenu_Visualize(t *testing.T) {
	f := newFixture(t)

	out := f.run(t, "3", "0")
	assertContains(t, out, "[!] The graph is empty.")
	if len(f.opened) != 0 {
		t.Fatalf("browser opened for empty graph: %v", f.opened)
	}

	out = f.run(t, "1", "3", "0")
	assertContains(t, out, "[SUCCESS] Browser opened.")
	if len(f.opened) != 1 || !strings.HasPrefix(f.opened[0], "https://viz.example.com/#graph%20GrapheBiparti") {
		t.Errorf("opened = %v", f.opened)
	}

	f.openErr = errors.New("no display")
	out = f.run(t, "1", "3", "0")
	assertContains(t, out, "[ERROR] Could not open the browser: no display", "https://viz.example.com/#")
}

func TestMenu_Export(t *testing.T) {
	f := newFixture(t)
	out := f.run(t, "1", "5", "0")

	dotPath := filepath.Join(f.dir, "out", "graphe.dot")
	assertContains(t, out, "[SUCCESS] Graph exported to '"+dotPath+"'.")

	data, err := os.ReadFile(dotPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), `"U1" -- "P10";`) {
		t.Errorf("DOT file missing edge:\n%s", data)
	}
}

func TestMenu_MissingFileAndInvalidChoice(t *testing.T) {
	f := newFixture(t)
	if err := os.Remove(filepath.Join(f.dir, "donnees.txt")); err != nil {
		t.Fatal(err)
	}

	out := f.run(t, "1", "9", "0")
	assertContains(t, out,
		"[CRITICAL ERROR] File '",
		"[ERROR] Invalid choice. Please try again.",
	)
}

func TestMenu_EndOfInput(t *testing.T) {
	f := newFixture(t)
	out := f.run(t, "2")
	if strings.Contains(out, "Goodbye") {
		t.Error("end of input should stop without the quit message")
	}

	// EOF while waiting for the user id.
	f.run(t, "1", "4")
}

func TestMenu_CanceledContext(t *testing.T) {
	g := graph.NewGraph()
	engine, _ := recommend.NewEngine(g, nil, zerolog.Nop())
	store := graph.NewGuarded(g)
	menu := NewMenu(strings.NewReader("2\n"), &bytes.Buffer{}, store, engine, ingest.NewLoader(store, nil), Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := menu.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestPrintStatistics(t *testing.T) {
	var buf bytes.Buffer
	PrintStatistics(&buf, graph.Stats{Users: 1, Products: 2, Purchases: 3})
	assertContains(t, buf.String(), " > Users     : 1", " > Products  : 2", " > Purchases : 3")
}
