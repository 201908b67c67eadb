package catalog

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"go-storefront/models"
)

// DisplayLanguage drives title collation for the name ordering
var DisplayLanguage = language.Spanish

// Sort returns a new slice ordered by key. Every ordering is stable; SortDefault
// keeps the input order.
func Sort(products []models.Product, key models.SortKey) []models.Product {
	out := slices.Clone(products)
	if out == nil {
		out = []models.Product{}
	}

	switch key {
	case models.SortPriceAsc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case models.SortPriceDesc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case models.SortRating:
		slices.SortStableFunc(out, byRatingDesc)
	case models.SortName:
		// Collator keeps internal buffers, one per call
		col := collate.New(DisplayLanguage)
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return col.CompareString(a.Title, b.Title)
		})
	}
	return out
}

func byRatingDesc(a, b models.Product) int {
	return cmp.Compare(b.Rating.Rate, a.Rating.Rate)
}
