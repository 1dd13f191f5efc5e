// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package export

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// DefaultGraphvizOnlineBase is the hosted Graphviz renderer. The DOT source
// travels in the URL fragment.
const DefaultGraphvizOnlineBase = "https://dreampuf.github.io/GraphvizOnline/#"

// GraphvizOnlineURL returns base followed by the percent-encoded DOT source.
// An empty base selects DefaultGraphvizOnlineBase.
func GraphvizOnlineURL(base, dot string) string {
	if base == "" {
		base = DefaultGraphvizOnlineBase
	}
	if !strings.HasSuffix(base, "#") {
		base += "#"
	}
	return base + url.PathEscape(dot)
}

// browserCommand returns the platform opener for target.
func browserCommand(goos, target string) (string, []string, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{target}, nil
	case "darwin":
		return "open", []string{target}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	default:
		return "", nil, fmt.Errorf("no browser opener for %s", goos)
	}
}

// OpenBrowser asks the desktop to open target in the default browser. It
// returns once the opener has been started.
func OpenBrowser(ctx context.Context, target string) error {
	name, args, err := browserCommand(runtime.GOOS, target)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // fixed opener binaries
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
