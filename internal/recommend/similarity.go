// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package recommend

import "github.com/tomtom215/basketgraph/internal/graph"

// JaccardSimilarity returns |A ∩ B| / |A ∪ B| over the purchase sets of a
// and b. It returns 0 when the union is empty or either user is nil.
func JaccardSimilarity(a, b *graph.User) float64 {
	if a == nil || b == nil {
		return 0
	}

	small, large := a, b
	if small.PurchaseCount() > large.PurchaseCount() {
		small, large = large, small
	}

	common := 0
	small.ForEachPurchase(func(pid int) {
		if large.HasPurchased(pid) {
			common++
		}
	})

	union := a.PurchaseCount() + b.PurchaseCount() - common
	if union == 0 {
		return 0
	}
	return float64(common) / float64(union)
}
