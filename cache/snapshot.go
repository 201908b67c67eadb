package cache

import (
	"context"
	"fmt"

	"go-storefront/models"
	"go-storefront/source"
)

// Snapshot serves products from the catalog snapshot kept in Redis, letting
// tools query the catalog last loaded by a running server.
type Snapshot struct {
	store *Store
}

var _ source.Catalog = (*Snapshot)(nil)

// NewSnapshot reads catalog data from store
func NewSnapshot(store *Store) *Snapshot {
	return &Snapshot{store: store}
}

func (s *Snapshot) Products(ctx context.Context) ([]models.Product, error) {
	products, err := s.store.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog snapshot: %w", err)
	}
	return products, nil
}

func (s *Snapshot) Product(ctx context.Context, id int) (models.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("%w: id %d", source.ErrNotFound, id)
}

func (s *Snapshot) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Product, 0)
	for _, p := range products {
		if string(p.Category) == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Snapshot) Categories(ctx context.Context) ([]string, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[models.Category]bool)
	var out []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, string(p.Category))
		}
	}
	return out, nil
}
