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
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/basketgraph/internal/config"
	"github.com/tomtom215/basketgraph/internal/logging"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// errUsage marks a command line error; the message has already been printed.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	switch {
	case err == nil, errors.Is(err, context.Canceled):
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		logging.Error().Err(err).Msg("basketgraph failed")
		os.Exit(1)
	}
}

// run dispatches a command. It is separate from main so tests can drive it.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("basketgraph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file (default: $CONFIG_PATH or ./config.yaml)")
	fs.Usage = func() { printUsage(stderr, fs) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}

	command := "menu"
	rest := fs.Args()
	if len(rest) > 0 {
		command, rest = rest[0], rest[1:]
	}

	if command == "version" {
		_, err := fmt.Fprintf(stdout, "basketgraph %s\n", Version)
		return err
	}

	cfg, err := config.LoadWithKoanf(*configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    stderr,
	})

	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	switch command {
	case "menu":
		return runMenu(ctx, a, stdin, stdout)
	case "serve":
		return runServe(ctx, a)
	case "recommend":
		return runRecommend(ctx, a, rest, stdout, stderr)
	case "export":
		return runExport(ctx, a, rest, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", command)
		printUsage(stderr, fs)
		return errUsage
	}
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: basketgraph [-config path] <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  menu        interactive console (default)")
	fmt.Fprintln(w, "  serve       run the HTTP API")
	fmt.Fprintln(w, "  recommend   print neighbours and recommendations for -user")
	fmt.Fprintln(w, "  export      write the graph in DOT format to -o or stdout")
	fmt.Fprintln(w, "  version     print the version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}
