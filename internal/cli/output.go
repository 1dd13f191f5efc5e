// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/tomtom215/basketgraph/internal/graph"
	"github.com/tomtom215/basketgraph/internal/recommend"
)

const (
	bannerWidth = 60
	ruleWidth   = 40
)

// PrintStatistics writes the user, product and purchase counts.
func PrintStatistics(w io.Writer, stats graph.Stats) {
	fmt.Fprintln(w, "\n--- Graph statistics ---")
	fmt.Fprintf(w, " > Users     : %d\n", stats.Users)
	fmt.Fprintf(w, " > Products  : %d\n", stats.Products)
	fmt.Fprintf(w, " > Purchases : %d\n", stats.Purchases)
}

// PrintUsers writes the user table and reports whether the graph has users.
func PrintUsers(w io.Writer, g *graph.Graph) bool {
	users := g.Users()
	if len(users) == 0 {
		fmt.Fprintln(w, "\n[!] WARNING: the graph is empty.")
		fmt.Fprintln(w, "    Load the data file (option 1) first.")
		return false
	}

	fmt.Fprintln(w, "\n--- Available users ---")
	fmt.Fprintf(w, "%-5s | %-20s | %s\n", "ID", "Name", "Purchases")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	for _, u := range users {
		fmt.Fprintf(w, "%-5d | %-20s | %d\n", u.ID, u.Name, u.PurchaseCount())
	}
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	return true
}

// PrintRecommendation writes the neighbours and the recommended products for
// one user. It returns false when the user does not exist.
func PrintRecommendation(w io.Writer, g *graph.Graph, engine *recommend.Engine, userID int) bool {
	target, ok := g.GetUser(userID)
	if !ok {
		fmt.Fprintf(w, "[ERROR] User %d does not exist in the graph.\n", userID)
		return false
	}

	fmt.Fprintf(w, "\n[ANALYSIS] Processing: %s\n", target.Name)

	neighbors := engine.NearestNeighbors(userID, engine.Config().DefaultNeighbors)
	fmt.Fprintln(w, " > Nearest neighbours (Jaccard):")
	if len(neighbors) == 0 {
		fmt.Fprintln(w, "   (no similar user found)")
	}
	for _, n := range neighbors {
		fmt.Fprintf(w, "   - %s (similarity: %.2f)\n", n.User.Name, n.Similarity)
	}

	recs := engine.GenerateRecommendations(userID)
	fmt.Fprintln(w, "\n > RESULT: recommended products")
	if len(recs) == 0 {
		fmt.Fprintln(w, "   [INFO] No relevant recommendation found.")
	}
	for _, r := range recs {
		fmt.Fprintf(w, "   * %-25s (confidence: %.2f)\n", r.Product.Name, r.Score)
	}
	return true
}

func printBanner(w io.Writer) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, "   RECOMMENDATION SYSTEM - BIPARTITE GRAPH")
	fmt.Fprintln(w, "   Collaborative filtering (Jaccard)")
	fmt.Fprintln(w, rule)
}

func printMenu(w io.Writer, dataPath string) {
	fmt.Fprintln(w, "\n--- MAIN MENU ---")
	fmt.Fprintf(w, "1. [Load]       Load purchases (%s)\n", dataPath)
	fmt.Fprintln(w, "2. [Analyze]    Show graph statistics")
	fmt.Fprintln(w, "3. [Visualize]  Open the graph in a web browser")
	fmt.Fprintln(w, "4. [Recommend]  Run a recommendation")
	fmt.Fprintln(w, "5. [Export]     Save the graph (.dot)")
	fmt.Fprintln(w, "0. [Quit]       Exit")
	fmt.Fprintln(w, strings.Repeat("-", 30))
}
