// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package recommend

import (
	"math"
	"testing"

	"github.com/tomtom215/basketgraph/internal/graph"
)

func TestJaccardSimilarity(t *testing.T) {
	t.Parallel()

	g := graph.NewGraph()
	for id := 1; id <= 6; id++ {
		g.AddUser(id, "u")
	}
	for pid := 10; pid <= 14; pid++ {
		g.AddProduct(pid, "p")
	}
	purchases := map[int][]int{
		1: {10, 11},
		2: {10, 11, 12},
		3: {12},
		4: {10, 11},
		// 5 and 6 have no purchases
	}
	for uid, pids := range purchases {
		for _, pid := range pids {
			g.AddPurchase(uid, pid)
		}
	}
	user := func(id int) *graph.User {
		u, ok := g.GetUser(id)
		if !ok {
			t.Fatalf("GetUser(%d) not found", id)
		}
		return u
	}

	tests := []struct {
		name string
		a, b *graph.User
		want float64
	}{
		{name: "partial overlap", a: user(1), b: user(2), want: 2.0 / 3.0},
		{name: "disjoint", a: user(1), b: user(3), want: 0},
		{name: "identical sets", a: user(1), b: user(4), want: 1},
		{name: "self with purchases", a: user(2), b: user(2), want: 1},
		{name: "self without purchases", a: user(5), b: user(5), want: 0},
		{name: "both empty", a: user(5), b: user(6), want: 0},
		{name: "one empty", a: user(1), b: user(5), want: 0},
		{name: "nil user", a: nil, b: user(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := JaccardSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("JaccardSimilarity() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("JaccardSimilarity() = %v, out of [0, 1]", got)
			}
		})
	}

	t.Run("symmetric for every pair", func(t *testing.T) {
		t.Parallel()

		users := g.Users()
		for _, a := range users {
			for _, b := range users {
				if ab, ba := JaccardSimilarity(a, b), JaccardSimilarity(b, a); ab != ba {
					t.Errorf("J(%d,%d) = %v, J(%d,%d) = %v", a.ID, b.ID, ab, b.ID, a.ID, ba)
				}
			}
		}
	})
}

// Similarity runs once per candidate pair, so it must stay allocation free.
func TestJaccardSimilarity_DoesNotAllocate(t *testing.T) {
	g := graph.NewGraph()
	g.AddUser(1, "a")
	g.AddUser(2, "b")
	for pid := 0; pid < 50; pid++ {
		g.AddProduct(pid, "p")
		g.AddPurchase(1, pid)
		if pid%2 == 0 {
			g.AddPurchase(2, pid)
		}
	}
	a, _ := g.GetUser(1)
	b, _ := g.GetUser(2)

	var sim float64
	allocs := testing.AllocsPerRun(100, func() {
		sim = JaccardSimilarity(a, b)
	})
	if allocs != 0 {
		t.Errorf("JaccardSimilarity allocated %v times per call, want 0", allocs)
	}
	if math.Abs(sim-0.5) > epsilon {
		t.Errorf("JaccardSimilarity() = %v, want 0.5", sim)
	}
}
