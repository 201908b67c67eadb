package source

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"go-storefront/models"
)

// wireProduct mirrors the product source payload. Pointer fields let the
// validator tell a missing field from a zero value.
type wireProduct struct {
	ID          *int        `json:"id" validate:"required,gt=0"`
	Title       *string     `json:"title" validate:"required,min=1"`
	Price       *float64    `json:"price" validate:"required,gte=0"`
	Description *string     `json:"description" validate:"required"`
	Category    *string     `json:"category" validate:"required,category"`
	Image       *string     `json:"image" validate:"required,url"`
	Rating      *wireRating `json:"rating" validate:"required"`
}

type wireRating struct {
	Rate  *float64 `json:"rate" validate:"required,gte=0,lte=5"`
	Count *int     `json:"count" validate:"required,gte=0"`
}

// NewValidator returns a validator that knows the catalog tags
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).Valid()
	})
	return v
}

func (w wireProduct) product() models.Product {
	return models.Product{
		ID:          *w.ID,
		Title:       *w.Title,
		Price:       *w.Price,
		Description: *w.Description,
		Category:    models.Category(*w.Category),
		Image:       *w.Image,
		Rating:      models.Rating{Rate: *w.Rating.Rate, Count: *w.Rating.Count},
	}
}

// decodeProducts parses and validates a product list. The first invalid record
// fails the whole batch, as do duplicate ids.
func decodeProducts(v *validator.Validate, data []byte) ([]models.Product, error) {
	var raw []wireProduct
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	seen := make(map[int]bool, len(raw))
	out := make([]models.Product, 0, len(raw))
	for i, w := range raw {
		if err := v.Struct(w); err != nil {
			return nil, &ValidationError{Index: i, Err: err}
		}
		if seen[*w.ID] {
			return nil, &ValidationError{Index: i, Err: fmt.Errorf("duplicate id %d", *w.ID)}
		}
		seen[*w.ID] = true
		out = append(out, w.product())
	}
	return out, nil
}

func decodeProduct(v *validator.Validate, data []byte) (models.Product, error) {
	var w wireProduct
	if err := json.Unmarshal(data, &w); err != nil {
		return models.Product{}, fmt.Errorf("decode product: %w", err)
	}
	if err := v.Struct(w); err != nil {
		return models.Product{}, &ValidationError{Index: -1, Err: err}
	}
	return w.product(), nil
}
