// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package graph

import "sort"

// idSet is an adjacency set of entity ids.
type idSet map[int]struct{}

// sorted returns the members in ascending order.
func (s idSet) sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// User is a buyer node. Its purchase set holds product ids.
type User struct {
	ID   int
	Name string

	purchases idSet
}

// Purchases returns the ids of purchased products in ascending order.
func (u *User) Purchases() []int {
	return u.purchases.sorted()
}

// ForEachPurchase calls fn for every purchased product id, in no particular
// order and without allocating.
func (u *User) ForEachPurchase(fn func(productID int)) {
	for id := range u.purchases {
		fn(id)
	}
}

// PurchaseCount returns the size of the purchase set.
func (u *User) PurchaseCount() int {
	return len(u.purchases)
}

// HasPurchased reports whether the user bought the given product.
func (u *User) HasPurchased(productID int) bool {
	_, ok := u.purchases[productID]
	return ok
}

// Product is an item node. Its buyer set holds user ids.
type Product struct {
	ID   int
	Name string

	buyers idSet
}

// Buyers returns the ids of buying users in ascending order.
func (p *Product) Buyers() []int {
	return p.buyers.sorted()
}

// ForEachBuyer calls fn for every buying user id, in no particular order and
// without allocating.
func (p *Product) ForEachBuyer(fn func(userID int)) {
	for id := range p.buyers {
		fn(id)
	}
}

// BuyerCount returns the size of the buyer set.
func (p *Product) BuyerCount() int {
	return len(p.buyers)
}

// BoughtBy reports whether the given user bought the product.
func (p *Product) BoughtBy(userID int) bool {
	_, ok := p.buyers[userID]
	return ok
}

// Edge is a single purchase relation.
type Edge struct {
	UserID    int `json:"user_id"`
	ProductID int `json:"product_id"`
}

// Stats summarizes graph size.
type Stats struct {
	Users     int `json:"users"`
	Products  int `json:"products"`
	Purchases int `json:"purchases"`
}

// Graph owns every User and Product.
type Graph struct {
	users    map[int]*User
	products map[int]*Product
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		users:    make(map[int]*User),
		products: make(map[int]*Product),
	}
}

// AddUser inserts a user unless one with the same id already exists.
// An existing user keeps its original name.
func (g *Graph) AddUser(id int, name string) {
	if _, ok := g.users[id]; ok {
		return
	}
	g.users[id] = &User{ID: id, Name: name, purchases: make(idSet)}
}

// AddProduct inserts a product unless one with the same id already exists.
func (g *Graph) AddProduct(id int, name string) {
	if _, ok := g.products[id]; ok {
		return
	}
	g.products[id] = &Product{ID: id, Name: name, buyers: make(idSet)}
}

// AddPurchase links a user to a product on both sides. Unknown endpoints
// leave the graph untouched.
func (g *Graph) AddPurchase(userID, productID int) {
	u, ok := g.users[userID]
	if !ok {
		return
	}
	p, ok := g.products[productID]
	if !ok {
		return
	}
	u.purchases[productID] = struct{}{}
	p.buyers[userID] = struct{}{}
}

// GetUser looks up a user by id.
func (g *Graph) GetUser(id int) (*User, bool) {
	u, ok := g.users[id]
	return u, ok
}

// GetProduct looks up a product by id.
func (g *Graph) GetProduct(id int) (*Product, bool) {
	p, ok := g.products[id]
	return p, ok
}

// Statistics counts users, products and purchase edges. The edge count is
// the sum of every user's purchase set size.
func (g *Graph) Statistics() Stats {
	stats := Stats{
		Users:    len(g.users),
		Products: len(g.products),
	}
	for _, u := range g.users {
		stats.Purchases += len(u.purchases)
	}
	return stats
}

// Users returns all users ordered by id.
func (g *Graph) Users() []*User {
	users := make([]*User, 0, len(g.users))
	for _, u := range g.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// Products returns all products ordered by id.
func (g *Graph) Products() []*Product {
	products := make([]*Product, 0, len(g.products))
	for _, p := range g.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}

// Edges returns every purchase relation ordered by user id, then product id.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.Statistics().Purchases)
	for _, u := range g.Users() {
		for _, pid := range u.Purchases() {
			edges = append(edges, Edge{UserID: u.ID, ProductID: pid})
		}
	}
	return edges
}

// IsEmpty reports whether the graph holds no users.
func (g *Graph) IsEmpty() bool {
	return len(g.users) == 0
}
