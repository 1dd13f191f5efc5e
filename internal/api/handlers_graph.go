// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/basketgraph/internal/graph"
	"github.com/tomtom215/basketgraph/internal/logging"
	"github.com/tomtom215/basketgraph/internal/metrics"
	"github.com/tomtom215/basketgraph/internal/models"
	"github.com/tomtom215/basketgraph/internal/validation"
)

// maxPurchaseBodyBytes caps POST /api/v1/purchases bodies.
const maxPurchaseBodyBytes = 64 << 10

// Stats handles GET /api/v1/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, http.StatusOK, h.store.Statistics(), 0, start)
}

// Users handles GET /api/v1/users
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var users []models.UserSummary
	h.store.Read(func(g *graph.Graph) {
		all := g.Users()
		users = make([]models.UserSummary, len(all))
		for i, u := range all {
			users[i] = models.UserSummary{ID: u.ID, Name: u.Name, Purchases: u.PurchaseCount()}
		}
	})

	respondSuccess(w, http.StatusOK, users, len(users), start)
}

// Products handles GET /api/v1/products
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var products []models.ProductSummary
	h.store.Read(func(g *graph.Graph) {
		all := g.Products()
		products = make([]models.ProductSummary, len(all))
		for i, p := range all {
			products[i] = productSummary(p)
		}
	})

	respondSuccess(w, http.StatusOK, products, len(products), start)
}

// User handles GET /api/v1/users/{userID}
func (h *Handler) User(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var (
		detail models.UserDetail
		found  bool
	)
	h.store.Read(func(g *graph.Graph) {
		u, exists := g.GetUser(id)
		if !exists {
			return
		}
		found = true
		detail = models.UserDetail{ID: u.ID, Name: u.Name, Products: []models.ProductSummary{}}
		for _, pid := range u.Purchases() {
			if p, ok := g.GetProduct(pid); ok {
				detail.Products = append(detail.Products, productSummary(p))
			}
		}
	})

	if !found {
		userNotFound(w, id)
		return
	}
	respondSuccess(w, http.StatusOK, detail, len(detail.Products), start)
}

// AddPurchase handles POST /api/v1/purchases
// The record is applied like one line of the data file: existing users and
// products keep their names and a repeated purchase changes nothing.
func (h *Handler) AddPurchase(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.PurchaseRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPurchaseBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			respondError(w, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "Request body too large", nil)
		case errors.Is(err, io.EOF):
			respondError(w, http.StatusBadRequest, "INVALID_BODY", "Request body is empty", nil)
		default:
			respondError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be a JSON purchase record", nil)
		}
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}
	rec := req.Record()

	h.store.Ingest(rec)
	stats := h.store.Statistics()
	metrics.UpdateGraphSize(stats.Users, stats.Products, stats.Purchases)

	logging.Ctx(r.Context()).Info().
		Int("user_id", rec.UserID).
		Int("product_id", rec.ProductID).
		Msg("Purchase recorded")

	respondSuccess(w, http.StatusCreated, stats, 0, start)
}

func productSummary(p *graph.Product) models.ProductSummary {
	return models.ProductSummary{ID: p.ID, Name: p.Name, Buyers: p.BuyerCount()}
}
