// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testPurchases = `1 Alice 10 Laptop
1 Alice 11 Mouse
2 Bob 10 Laptop
2 Bob 11 Mouse
2 Bob 12 Mechanical Keyboard
3 Carol 13 Monitor
`

// writeFixture writes a purchase file and a config pointing at it and
// returns the config path and the directory holding both.
func writeFixture(t *testing.T, purchases string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "purchases.txt")
	if purchases != "" {
		if err := os.WriteFile(dataPath, []byte(purchases), 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}
	cfg := "data:\n  path: " + dataPath + "\n  load_on_startup: true\n" +
		"export:\n  dot_path: " + filepath.Join(dir, "graph.dot") + "\n" +
		"logging:\n  level: error\n"
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return cfgPath, dir
}

func runArgs(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_Version(t *testing.T) {
	out, _, err := runArgs(t, "", "version")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if out != "basketgraph "+Version+"\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	cfgPath, _ := writeFixture(t, testPurchases)
	_, stderr, err := runArgs(t, "", "-config", cfgPath, "frobnicate")
	if !errors.Is(err, errUsage) {
		t.Fatalf("run() error = %v, want errUsage", err)
	}
	if !strings.Contains(stderr, `unknown command "frobnicate"`) {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRun_BadFlag(t *testing.T) {
	_, _, err := runArgs(t, "", "-nope")
	if !errors.Is(err, errUsage) {
		t.Fatalf("run() error = %v, want errUsage", err)
	}
}

func TestRun_MissingConfig(t *testing.T) {
	_, _, err := runArgs(t, "", "-config", filepath.Join(t.TempDir(), "absent.yaml"), "version")
	if err != nil {
		t.Fatalf("version should not load configuration, got %v", err)
	}

	_, _, err = runArgs(t, "", "-config", filepath.Join(t.TempDir(), "absent.yaml"), "export")
	if err == nil || !strings.Contains(err.Error(), "load configuration") {
		t.Fatalf("run() error = %v, want load configuration error", err)
	}
}

func TestRun_Recommend(t *testing.T) {
	cfgPath, _ := writeFixture(t, testPurchases)

	out, _, err := runArgs(t, "", "-config", cfgPath, "recommend", "-user", "1")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, want := range []string{
		"[ANALYSIS] Processing: Alice",
		"- Bob (similarity: 0.67)",
		"* Mechanical Keyboard",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Monitor") {
		t.Errorf("Carol shares nothing with Alice, Monitor must not be recommended:\n%s", out)
	}
}

func TestRun_RecommendErrors(t *testing.T) {
	cfgPath, _ := writeFixture(t, testPurchases)

	if _, _, err := runArgs(t, "", "-config", cfgPath, "recommend"); !errors.Is(err, errUsage) {
		t.Errorf("missing -user: error = %v, want errUsage", err)
	}

	out, _, err := runArgs(t, "", "-config", cfgPath, "recommend", "-user", "99")
	if err == nil || !strings.Contains(err.Error(), "user 99 not found") {
		t.Errorf("unknown user: error = %v", err)
	}
	if !strings.Contains(out, "User 99 does not exist") {
		t.Errorf("stdout = %q", out)
	}

	missing, _ := writeFixture(t, "")
	if _, _, err := runArgs(t, "", "-config", missing, "recommend", "-user", "1"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing data file: error = %v, want os.ErrNotExist", err)
	}
}

func TestRun_ExportStdout(t *testing.T) {
	cfgPath, _ := writeFixture(t, testPurchases)

	out, _, err := runArgs(t, "", "-config", cfgPath, "export")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.HasPrefix(out, "graph") {
		t.Errorf("stdout is not DOT:\n%s", out)
	}
	if !strings.Contains(out, "Mechanical Keyboard") {
		t.Errorf("stdout missing product label:\n%s", out)
	}
}

func TestRun_ExportFile(t *testing.T) {
	cfgPath, dir := writeFixture(t, testPurchases)
	target := filepath.Join(dir, "out.dot")

	out, _, err := runArgs(t, "", "-config", cfgPath, "export", "-o", target)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Contains(data, []byte("Alice")) {
		t.Errorf("exported file missing Alice:\n%s", data)
	}
}

func TestRun_Menu(t *testing.T) {
	cfgPath, _ := writeFixture(t, testPurchases)

	out, _, err := runArgs(t, "2\n4\n1\n0\n", "-config", cfgPath)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out, "Alice") || !strings.Contains(out, "Mechanical Keyboard") {
		t.Errorf("menu output missing loaded data:\n%s", out)
	}
}

func TestRun_MenuMissingDataFile(t *testing.T) {
	cfgPath, _ := writeFixture(t, "")

	if _, _, err := runArgs(t, "0\n", "-config", cfgPath, "menu"); err != nil {
		t.Fatalf("a missing data file should not stop the menu, got %v", err)
	}
}
