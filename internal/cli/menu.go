// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/basketgraph/internal/export"
	"github.com/tomtom215/basketgraph/internal/graph"
	"github.com/tomtom215/basketgraph/internal/ingest"
	"github.com/tomtom215/basketgraph/internal/logging"
	"github.com/tomtom215/basketgraph/internal/recommend"
)

// BrowserOpener opens a URL for the user.
type BrowserOpener func(ctx context.Context, target string) error

// Options configures the menu.
type Options struct {
	DataPath    string
	DOTPath     string
	GraphvizURL string

	// OpenBrowser defaults to export.OpenBrowser.
	OpenBrowser BrowserOpener
}

// Menu is the interactive console loop.
type Menu struct {
	in     *bufio.Scanner
	out    io.Writer
	store  *graph.Guarded
	engine *recommend.Engine
	loader *ingest.Loader
	opts   Options
	logger zerolog.Logger
}

// NewMenu creates a menu over a shared graph. The engine must read the same
// *graph.Graph that store guards, and loader must write through store.
func NewMenu(in io.Reader, out io.Writer, store *graph.Guarded, engine *recommend.Engine, loader *ingest.Loader, opts Options) *Menu {
	if opts.OpenBrowser == nil {
		opts.OpenBrowser = export.OpenBrowser
	}
	return &Menu{
		in:     bufio.NewScanner(in),
		out:    out,
		store:  store,
		engine: engine,
		loader: loader,
		opts:   opts,
		logger: logging.WithComponent("cli"),
	}
}

// Run shows the menu until the user quits or input ends. It returns
// ctx.Err() if the context is canceled between two commands.
func (m *Menu) Run(ctx context.Context) error {
	printBanner(m.out)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		printMenu(m.out, m.opts.DataPath)
		choice, ok := m.prompt(">>> Enter your choice: ")
		if !ok {
			return m.in.Err()
		}

		switch choice {
		case "1":
			m.load(ctx)
		case "2":
			PrintStatistics(m.out, m.store.Statistics())
		case "3":
			m.visualize(ctx)
		case "4":
			if !m.recommend() {
				return m.in.Err()
			}
		case "5":
			m.exportDOT()
		case "0":
			fmt.Fprintln(m.out, "\n[INFO] Exiting. Goodbye.")
			return nil
		default:
			fmt.Fprintln(m.out, "\n[ERROR] Invalid choice. Please try again.")
		}
	}
}

// prompt writes label and reads one trimmed line. ok is false at end of input.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) load(ctx context.Context) {
	fmt.Fprintf(m.out, "\n[INFO] Reading '%s'...\n", m.opts.DataPath)

	stats, err := m.loader.LoadFile(ctx, m.opts.DataPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintf(m.out, "[CRITICAL ERROR] File '%s' not found.\n", m.opts.DataPath)
		return
	case err != nil:
		fmt.Fprintf(m.out, "[ERROR] Unexpected error: %v\n", err)
		return
	}

	for _, msg := range stats.Errors {
		fmt.Fprintf(m.out, "[WARNING] %s\n", msg)
	}
	if stats.Rejected > len(stats.Errors) {
		fmt.Fprintf(m.out, "[WARNING] ... and %d more rejected lines\n", stats.Rejected-len(stats.Errors))
	}
	fmt.Fprintf(m.out, "[SUCCESS] Load finished. %d relations imported.\n", stats.Imported)
}

func (m *Menu) visualize(ctx context.Context) {
	var (
		dot   string
		empty bool
	)
	m.store.Read(func(g *graph.Graph) {
		empty = g.IsEmpty()
		dot = export.DOT(g)
	})
	if empty {
		fmt.Fprintln(m.out, "[!] The graph is empty.")
		return
	}

	fmt.Fprintln(m.out, "[PROCESSING] Generating the visualization link...")
	link := export.GraphvizOnlineURL(m.opts.GraphvizURL, dot)
	if err := m.opts.OpenBrowser(ctx, link); err != nil {
		m.logger.Warn().Err(err).Msg("Opening browser failed")
		fmt.Fprintf(m.out, "[ERROR] Could not open the browser: %v\n", err)
		fmt.Fprintf(m.out, "        Open this link manually:\n%s\n", link)
		return
	}
	fmt.Fprintln(m.out, "[SUCCESS] Browser opened. Check the graph window.")
}

// recommend lists users, asks for one id and prints its analysis. It returns
// false only when input ends while waiting for the id.
func (m *Menu) recommend() bool {
	var hasUsers bool
	m.store.Read(func(g *graph.Graph) {
		hasUsers = PrintUsers(m.out, g)
	})
	if !hasUsers {
		return true
	}

	raw, ok := m.prompt(">>> Enter the target user ID: ")
	if !ok {
		return false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(m.out, "[ERROR] Please enter a valid integer.")
		return true
	}

	m.store.Read(func(g *graph.Graph) {
		PrintRecommendation(m.out, g, m.engine, id)
	})
	return true
}

func (m *Menu) exportDOT() {
	var err error
	m.store.Read(func(g *graph.Graph) {
		err = export.WriteDOTFile(g, m.opts.DOTPath)
	})
	if err != nil {
		fmt.Fprintf(m.out, "[ERROR] Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "[SUCCESS] Graph exported to '%s'.\n", m.opts.DOTPath)
}
