package models

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned when a category key is not part of the catalog taxonomy.
var ErrUnknownCategory = errors.New("unknown category")

// Category represents a product category key as published by the product source
type Category string

const (
	CategoryElectronics    Category = "electronics"
	CategoryJewelery       Category = "jewelery"
	CategoryMensClothing   Category = "men's clothing"
	CategoryWomensClothing Category = "women's clothing"
)

// Categories lists every known category in display order
var Categories = []Category{
	CategoryElectronics,
	CategoryJewelery,
	CategoryMensClothing,
	CategoryWomensClothing,
}

// CategoryLabels maps categories to their display labels
var CategoryLabels = map[Category]string{
	CategoryElectronics:    "Electrónica",
	CategoryJewelery:       "Joyería",
	CategoryMensClothing:   "Ropa de Hombre",
	CategoryWomensClothing: "Ropa de Mujer",
}

// ParseCategory validates a raw category key
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
	return c, nil
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	_, ok := CategoryLabels[c]
	return ok
}

// Label returns the display label, or the raw key when the category is unknown
func (c Category) Label() string {
	if label, ok := CategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

func (c Category) String() string {
	return string(c)
}
