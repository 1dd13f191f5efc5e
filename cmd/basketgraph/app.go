// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/tomtom215/basketgraph/internal/api"
	"github.com/tomtom215/basketgraph/internal/cli"
	"github.com/tomtom215/basketgraph/internal/config"
	"github.com/tomtom215/basketgraph/internal/export"
	"github.com/tomtom215/basketgraph/internal/graph"
	"github.com/tomtom215/basketgraph/internal/ingest"
	"github.com/tomtom215/basketgraph/internal/logging"
	"github.com/tomtom215/basketgraph/internal/recommend"
	"github.com/tomtom215/basketgraph/internal/supervisor"
	"github.com/tomtom215/basketgraph/internal/supervisor/services"
)

// app holds the components shared by every command. engine reads the graph
// that store guards, and loader writes through store.
type app struct {
	cfg     *config.Config
	store   *graph.Guarded
	engine  *recommend.Engine
	tracker *ingest.StatsTracker
	loader  *ingest.Loader
}

func newApp(cfg *config.Config) (*app, error) {
	g := graph.NewGraph()
	engine, err := recommend.NewEngine(g, recommendConfig(cfg.Recommend), logging.WithComponent("recommend"))
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}
	store := graph.NewGuarded(g)
	tracker := ingest.NewStatsTracker()
	return &app{
		cfg:     cfg,
		store:   store,
		engine:  engine,
		tracker: tracker,
		loader:  ingest.NewLoader(store, tracker),
	}, nil
}

func recommendConfig(rc config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		DefaultNeighbors:   rc.Neighbors,
		MaxNeighbors:       rc.MaxNeighbors,
		RecommendNeighbors: rc.RecommendNeighbors,
	}
}

// loadData reads the configured purchase file into the graph.
func (a *app) loadData(ctx context.Context) error {
	stats, err := a.loader.LoadFile(ctx, a.cfg.Data.Path)
	if err != nil {
		return err
	}
	logging.Info().
		Str("path", a.cfg.Data.Path).
		Int("imported", stats.Imported).
		Int("rejected", stats.Rejected).
		Msg("Purchase data loaded")
	return nil
}

func runMenu(ctx context.Context, a *app, stdin io.Reader, stdout io.Writer) error {
	if a.cfg.Data.LoadOnStartup {
		if err := a.loadData(ctx); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			logging.Warn().Str("path", a.cfg.Data.Path).Msg("Data file not found, starting with an empty graph")
		}
	}

	menu := cli.NewMenu(stdin, stdout, a.store, a.engine, a.loader, cli.Options{
		DataPath:    a.cfg.Data.Path,
		DOTPath:     a.cfg.Export.DOTPath,
		GraphvizURL: a.cfg.Export.GraphvizURL,
	})
	return menu.Run(ctx)
}

func runRecommend(ctx context.Context, a *app, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("recommend", flag.ContinueOnError)
	fs.SetOutput(stderr)
	userID := fs.Int("user", -1, "user ID to recommend for")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *userID < 0 {
		fmt.Fprintln(stderr, "recommend: -user is required")
		fs.PrintDefaults()
		return errUsage
	}

	if err := a.loadData(ctx); err != nil {
		return err
	}

	var found bool
	a.store.Read(func(g *graph.Graph) {
		found = cli.PrintRecommendation(stdout, g, a.engine, *userID)
	})
	if !found {
		return fmt.Errorf("user %d not found", *userID)
	}
	return nil
}

func runExport(ctx context.Context, a *app, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("o", "", "output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if err := a.loadData(ctx); err != nil {
		return err
	}

	var err error
	a.store.Read(func(g *graph.Graph) {
		if *out == "" {
			err = export.WriteDOT(stdout, g)
			return
		}
		err = export.WriteDOTFile(g, *out)
	})
	if err != nil {
		return fmt.Errorf("export graph: %w", err)
	}
	if *out != "" {
		logging.Info().Str("path", *out).Msg("Graph exported")
	}
	return nil
}

// runServe runs the data watcher and the HTTP API under the supervisor tree
// until ctx is canceled.
func runServe(ctx context.Context, a *app) error {
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: a.cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddDataService(services.NewDataWatchService(a.loader, services.DataWatchConfig{
		Path:        a.cfg.Data.Path,
		LoadOnStart: a.cfg.Data.LoadOnStartup,
		Watch:       a.cfg.Data.Watch,
		Debounce:    a.cfg.Data.WatchDebounce,
		MinInterval: a.cfg.Data.ReloadMinInterval,
	}))

	if a.cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin")
	}
	handler := api.NewHandler(a.store, a.engine, a.tracker, a.cfg, Version)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(a.cfg.Security)))
	server := &http.Server{
		Addr:         a.cfg.Server.Address(),
		Handler:      router.SetupChi(),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, a.cfg.Server.ShutdownTimeout))

	logging.Info().Str("version", Version).Str("addr", server.Addr).Msg("Starting basketgraph")

	errCh := tree.ServeBackground(ctx)
	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received")
		// The tree stops its children once ctx is done; wait for it.
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logging.Debug().Err(err).Msg("Supervisor tree returned")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			treeErr = fmt.Errorf("supervisor tree stopped: %w", err)
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	if treeErr != nil {
		return treeErr
	}
	logging.Info().Msg("Application stopped gracefully")
	return nil
}
