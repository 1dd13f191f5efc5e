// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package models

import "github.com/tomtom215/basketgraph/internal/graph"

// UserSummary is one row of the user listing.
type UserSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Purchases int    `json:"purchases"`
}

// ProductSummary is one row of the product listing.
type ProductSummary struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Buyers int    `json:"buyers"`
}

// UserDetail describes a user and the products they bought.
type UserDetail struct {
	ID       int              `json:"id"`
	Name     string           `json:"name"`
	Products []ProductSummary `json:"products"`
}

// NeighborResult is one ranked neighbour of a target user.
type NeighborResult struct {
	UserID     int     `json:"user_id"`
	UserName   string  `json:"user_name"`
	Similarity float64 `json:"similarity"`
}

// RecommendationResult is one scored product suggestion.
type RecommendationResult struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Score       float64 `json:"score"`
}

// NeighborsRequest holds the validated parameters of a neighbour query.
type NeighborsRequest struct {
	UserID int `json:"user_id" validate:"gte=0"`
	K      int `json:"k" validate:"min=1"`
}

// PurchaseRequest is the body of POST /api/v1/purchases. Ids are pointers so
// that an absent id fails validation instead of decoding as 0.
type PurchaseRequest struct {
	UserID      *int   `json:"user_id" validate:"required,gte=0"`
	UserName    string `json:"user_name" validate:"required,entityname,max=256"`
	ProductID   *int   `json:"product_id" validate:"required,gte=0"`
	ProductName string `json:"product_name" validate:"required,entityname,max=256"`
}

// Record converts a validated request. It must not be called before
// validation succeeds.
func (p *PurchaseRequest) Record() graph.Record {
	return graph.Record{
		UserID:      *p.UserID,
		UserName:    p.UserName,
		ProductID:   *p.ProductID,
		ProductName: p.ProductName,
	}
}
