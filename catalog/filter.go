// Package catalog implements the catalog query pipeline: filter, sort and paginate
// over an in-memory product list. Every function here is pure; inputs are never mutated.
package catalog

import (
	"strings"

	"go-storefront/format"
	"go-storefront/models"
)

// Filter returns the products matching every active criterion of state, in their
// original relative order. The result is never nil.
func Filter(products []models.Product, state models.QueryState) []models.Product {
	search := strings.ToLower(strings.TrimSpace(state.Search))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !matchesText(p, search) {
			continue
		}
		if state.Category != "" && string(p.Category) != state.Category {
			continue
		}
		if state.Price != nil && !state.Price.Contains(float64(format.ToDisplayCurrency(p.Price))) {
			continue
		}
		if state.MinRating > 0 && p.Rating.Rate < state.MinRating {
			continue
		}
		out = append(out, p)
	}
	return out
}

// search must already be lowercased
func matchesText(p models.Product, search string) bool {
	return strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.Description), search) ||
		strings.Contains(strings.ToLower(string(p.Category)), search)
}
