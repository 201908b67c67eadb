package catalog

import (
	"slices"

	"go-storefront/format"
	"go-storefront/models"
)

// Categories returns the distinct category keys in first-seen order
func Categories(products []models.Product) []string {
	seen := make(map[models.Category]bool)
	var out []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, string(p.Category))
		}
	}
	return out
}

// CategorySummaries counts products per category. Each summary uses the image of the
// first product seen in that category.
func CategorySummaries(products []models.Product) []models.CategorySummary {
	index := make(map[models.Category]int)
	var out []models.CategorySummary
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			index[p.Category] = len(out)
			out = append(out, models.CategorySummary{
				Key:   p.Category,
				Label: p.Category.Label(),
				Image: p.Image,
			})
			i = len(out) - 1
		}
		out[i].Count++
	}
	return out
}

// PriceBounds is the observed price range of products in display currency.
// An empty list yields the zero range.
func PriceBounds(products []models.Product) models.PriceRange {
	if len(products) == 0 {
		return models.PriceRange{}
	}
	lo := format.ToDisplayCurrency(products[0].Price)
	hi := lo
	for _, p := range products[1:] {
		v := format.ToDisplayCurrency(p.Price)
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return models.PriceRange{Min: float64(lo), Max: float64(hi)}
}

// Offers keeps products priced under maxPriceUSD or rated at least minRating,
// best rated first.
func Offers(products []models.Product, maxPriceUSD, minRating float64) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range products {
		if p.Price < maxPriceUSD || p.Rating.Rate >= minRating {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, byRatingDesc)
	return out
}

// TotalSavings sums percent of every price, in USD
func TotalSavings(products []models.Product, percent float64) float64 {
	var total float64
	for _, p := range products {
		total += p.Price * percent / 100
	}
	return total
}

// Featured returns the first n products
func Featured(products []models.Product, n int) []models.Product {
	n = min(max(n, 0), len(products))
	return slices.Clone(products[:n:n])
}

// Find looks a product up by id
func Find(products []models.Product, id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
