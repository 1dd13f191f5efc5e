// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package graph

// Record is one purchase relation, as parsed from a data file line or
// converted from an API request.
type Record struct {
	UserID      int    `json:"user_id"`
	UserName    string `json:"user_name"`
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
}

// Ingest applies a record as add user, add product, add purchase, in that order.
func (g *Graph) Ingest(rec Record) {
	g.AddUser(rec.UserID, rec.UserName)
	g.AddProduct(rec.ProductID, rec.ProductName)
	g.AddPurchase(rec.UserID, rec.ProductID)
}
