// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package graph

import (
	"reflect"
	"sort"
	"sync"
	"testing"
)

// scenarioGraph builds users A/B/C and products X/Y/Z with
// A->{X,Y}, B->{X,Y,Z}, C->{Z}.
func scenarioGraph() *Graph {
	g := NewGraph()
	for _, r := range []Record{
		{UserID: 1, UserName: "A", ProductID: 10, ProductName: "X"},
		{UserID: 1, UserName: "A", ProductID: 11, ProductName: "Y"},
		{UserID: 2, UserName: "B", ProductID: 10, ProductName: "X"},
		{UserID: 2, UserName: "B", ProductID: 11, ProductName: "Y"},
		{UserID: 2, UserName: "B", ProductID: 12, ProductName: "Z"},
		{UserID: 3, UserName: "C", ProductID: 12, ProductName: "Z"},
	} {
		g.Ingest(r)
	}
	return g
}

func TestGraph_AddUser(t *testing.T) {
	t.Parallel()

	g := NewGraph()
	g.AddUser(1, "Alice")
	g.AddUser(1, "Mallory")

	u, ok := g.GetUser(1)
	if !ok {
		t.Fatal("GetUser(1) not found")
	}
	if u.Name != "Alice" {
		t.Errorf("Name = %q, want %q", u.Name, "Alice")
	}
	if got := g.Statistics().Users; got != 1 {
		t.Errorf("Users = %d, want 1", got)
	}
}

func TestGraph_AddProduct(t *testing.T) {
	t.Parallel()

	g := NewGraph()
	g.AddProduct(10, "Keyboard")
	g.AddProduct(10, "Mouse")

	p, ok := g.GetProduct(10)
	if !ok {
		t.Fatal("GetProduct(10) not found")
	}
	if p.Name != "Keyboard" {
		t.Errorf("Name = %q, want %q", p.Name, "Keyboard")
	}
	if p.BuyerCount() != 0 {
		t.Errorf("BuyerCount() = %d, want 0", p.BuyerCount())
	}
}

func TestGraph_AddPurchase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		userID        int
		productID     int
		wantPurchases int
	}{
		{name: "both endpoints exist", userID: 1, productID: 10, wantPurchases: 1},
		{name: "unknown product", userID: 1, productID: 99, wantPurchases: 0},
		{name: "unknown user", userID: 99, productID: 10, wantPurchases: 0},
		{name: "both unknown", userID: 98, productID: 99, wantPurchases: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := NewGraph()
			g.AddUser(1, "Alice")
			g.AddProduct(10, "Keyboard")
			g.AddPurchase(tt.userID, tt.productID)

			stats := g.Statistics()
			if stats.Purchases != tt.wantPurchases {
				t.Errorf("Purchases = %d, want %d", stats.Purchases, tt.wantPurchases)
			}
			if stats.Users != 1 || stats.Products != 1 {
				t.Errorf("Statistics() = %+v, want 1 user and 1 product", stats)
			}
			p, _ := g.GetProduct(10)
			if p.BuyerCount() != tt.wantPurchases {
				t.Errorf("BuyerCount() = %d, want %d", p.BuyerCount(), tt.wantPurchases)
			}
		})
	}
}

func TestGraph_AddPurchase_UnknownEndpointLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	g := scenarioGraph()
	before := snapshot(g)

	g.AddPurchase(1, 99)
	g.AddPurchase(99, 12)

	if after := snapshot(g); !reflect.DeepEqual(before, after) {
		t.Errorf("graph changed:\n before %+v\n after  %+v", before, after)
	}
}

func TestGraph_Idempotence(t *testing.T) {
	t.Parallel()

	once := scenarioGraph()
	twice := scenarioGraph()
	for _, e := range twice.Edges() {
		twice.AddPurchase(e.UserID, e.ProductID)
	}
	for _, u := range twice.Users() {
		twice.AddUser(u.ID, u.Name+"!")
	}
	for _, p := range twice.Products() {
		twice.AddProduct(p.ID, p.Name+"!")
	}

	if !reflect.DeepEqual(snapshot(once), snapshot(twice)) {
		t.Errorf("repeated insertion changed graph state")
	}
}

func TestGraph_Lookup(t *testing.T) {
	t.Parallel()

	g := scenarioGraph()

	if u, ok := g.GetUser(42); ok || u != nil {
		t.Errorf("GetUser(42) = %v, %v; want nil, false", u, ok)
	}
	if p, ok := g.GetProduct(42); ok || p != nil {
		t.Errorf("GetProduct(42) = %v, %v; want nil, false", p, ok)
	}

	b, ok := g.GetUser(2)
	if !ok {
		t.Fatal("GetUser(2) not found")
	}
	if got, want := b.Purchases(), []int{10, 11, 12}; !reflect.DeepEqual(got, want) {
		t.Errorf("Purchases() = %v, want %v", got, want)
	}
	if !b.HasPurchased(12) || b.HasPurchased(13) {
		t.Error("HasPurchased() mismatch")
	}

	z, _ := g.GetProduct(12)
	if got, want := z.Buyers(), []int{2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Buyers() = %v, want %v", got, want)
	}
	if !z.BoughtBy(3) || z.BoughtBy(1) {
		t.Error("BoughtBy() mismatch")
	}
}

func TestGraph_Statistics(t *testing.T) {
	t.Parallel()

	g := scenarioGraph()
	stats := g.Statistics()

	want := Stats{Users: 3, Products: 3, Purchases: 6}
	if stats != want {
		t.Errorf("Statistics() = %+v, want %+v", stats, want)
	}

	buyerSum := 0
	for _, p := range g.Products() {
		buyerSum += p.BuyerCount()
	}
	if buyerSum != stats.Purchases {
		t.Errorf("sum of buyer sets = %d, want %d", buyerSum, stats.Purchases)
	}

	if !NewGraph().IsEmpty() {
		t.Error("NewGraph().IsEmpty() = false, want true")
	}
	if g.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
}

func TestGraph_OrderedIteration(t *testing.T) {
	t.Parallel()

	g := NewGraph()
	for _, id := range []int{5, 3, 9, 1} {
		g.AddUser(id, "u")
		g.AddProduct(id*10, "p")
	}
	g.AddPurchase(9, 10)
	g.AddPurchase(1, 90)
	g.AddPurchase(1, 30)

	var userIDs []int
	for _, u := range g.Users() {
		userIDs = append(userIDs, u.ID)
	}
	if want := []int{1, 3, 5, 9}; !reflect.DeepEqual(userIDs, want) {
		t.Errorf("Users() ids = %v, want %v", userIDs, want)
	}

	var productIDs []int
	for _, p := range g.Products() {
		productIDs = append(productIDs, p.ID)
	}
	if want := []int{10, 30, 50, 90}; !reflect.DeepEqual(productIDs, want) {
		t.Errorf("Products() ids = %v, want %v", productIDs, want)
	}

	wantEdges := []Edge{{1, 30}, {1, 90}, {9, 10}}
	if got := g.Edges(); !reflect.DeepEqual(got, wantEdges) {
		t.Errorf("Edges() = %v, want %v", got, wantEdges)
	}
}

func TestGraph_ForEachMatchesSortedViews(t *testing.T) {
	t.Parallel()

	g := scenarioGraph()
	collect := func(each func(func(int))) []int {
		ids := []int{}
		each(func(id int) { ids = append(ids, id) })
		sort.Ints(ids)
		return ids
	}

	for _, u := range g.Users() {
		if got, want := collect(u.ForEachPurchase), u.Purchases(); !reflect.DeepEqual(got, want) {
			t.Errorf("user %d: ForEachPurchase = %v, Purchases = %v", u.ID, got, want)
		}
	}
	for _, p := range g.Products() {
		if got, want := collect(p.ForEachBuyer), p.Buyers(); !reflect.DeepEqual(got, want) {
			t.Errorf("product %d: ForEachBuyer = %v, Buyers = %v", p.ID, got, want)
		}
	}

	g.AddUser(4, "D")
	d, _ := g.GetUser(4)
	calls := 0
	d.ForEachPurchase(func(int) { calls++ })
	if calls != 0 {
		t.Errorf("ForEachPurchase on a user without purchases called fn %d times", calls)
	}
}

func TestGuarded_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := NewGuarded(nil)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.Write(func(g *Graph) {
				g.Ingest(Record{UserID: i, UserName: "u", ProductID: 100 + i%5, ProductName: "p"})
			})
		}(i)
		go func() {
			defer wg.Done()
			s.Read(func(g *Graph) {
				_ = g.Edges()
			})
		}()
	}
	wg.Wait()

	want := Stats{Users: 20, Products: 5, Purchases: 20}
	if got := s.Statistics(); got != want {
		t.Errorf("Statistics() = %+v, want %+v", got, want)
	}
}

type graphSnapshot struct {
	Users    map[int]string
	Products map[int]string
	Edges    []Edge
}

func snapshot(g *Graph) graphSnapshot {
	s := graphSnapshot{Users: map[int]string{}, Products: map[int]string{}}
	for _, u := range g.Users() {
		s.Users[u.ID] = u.Name
	}
	for _, p := range g.Products() {
		s.Products[p.ID] = p.Name
	}
	s.Edges = g.Edges()
	return s
}
