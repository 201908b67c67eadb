package source

import (
	"context"
	"fmt"
	"slices"

	"go-storefront/models"
)

// Static serves a fixed product list, used for offline mode
type Static struct {
	products []models.Product
}

// NewStatic wraps products. The slice is copied.
func NewStatic(products []models.Product) *Static {
	return &Static{products: slices.Clone(products)}
}

func (s *Static) Products(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Op: "products", Err: err}
	}
	return slices.Clone(s.products), nil
}

func (s *Static) Product(ctx context.Context, id int) (models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

func (s *Static) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	out := make([]models.Product, 0)
	for _, p := range s.products {
		if string(p.Category) == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Static) Categories(ctx context.Context) ([]string, error) {
	var out []string
	for _, p := range s.products {
		if !slices.Contains(out, string(p.Category)) {
			out = append(out, string(p.Category))
		}
	}
	return out, nil
}
