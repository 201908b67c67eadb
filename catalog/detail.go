package catalog

import (
	"strconv"

	"go-storefront/format"
	"go-storefront/models"
)

// Detail decorates a product with the attributes shown on its detail view
func Detail(p models.Product) models.ProductDetail {
	specs := []models.Specification{
		{Label: "Categoría", Value: p.Category.Label()},
		{Label: "ID del Producto", Value: "#" + strconv.Itoa(p.ID)},
	}
	switch p.Category {
	case models.CategoryElectronics:
		specs = append(specs,
			models.Specification{Label: "Tipo", Value: "Electrónica"},
			models.Specification{Label: "Garantía", Value: "1 año"},
			models.Specification{Label: "Envío", Value: "Gratis"},
		)
	case models.CategoryJewelery:
		specs = append(specs,
			models.Specification{Label: "Material", Value: "Metales preciosos"},
			models.Specification{Label: "Garantía", Value: "6 meses"},
			models.Specification{Label: "Certificado", Value: "Incluido"},
		)
	case models.CategoryMensClothing, models.CategoryWomensClothing:
		specs = append(specs,
			models.Specification{Label: "Material", Value: "Ver descripción"},
			models.Specification{Label: "Tallas", Value: "S, M, L, XL"},
			models.Specification{Label: "Cuidado", Value: "Ver etiqueta"},
		)
	}

	return models.ProductDetail{
		Product:        p,
		DisplayPrice:   format.Price(p.Price),
		CategoryLabel:  p.Category.Label(),
		Stars:          format.Stars(p.Rating.Rate),
		Specifications: specs,
	}
}

// Card decorates a product for listing views
func Card(p models.Product) models.ProductCard {
	return models.ProductCard{
		Product:       p,
		DisplayPrice:  format.Price(p.Price),
		CategoryLabel: p.Category.Label(),
		RatingLabel:   format.Rating(p.Rating.Rate),
	}
}

// Cards decorates every product, keeping order
func Cards(products []models.Product) []models.ProductCard {
	cards := make([]models.ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, Card(p))
	}
	return cards
}

// OfferCards decorates products discounted by percent
func OfferCards(products []models.Product, percent float64) []models.Offer {
	offers := make([]models.Offer, 0, len(products))
	for _, p := range products {
		offers = append(offers, models.Offer{
			ProductCard:   Card(p),
			Discount:      percent,
			DiscountLabel: "-" + format.Percent(percent),
			OfferPrice:    format.DiscountPrice(p.Price, percent),
			ReviewCount:   format.Compact(int64(p.Rating.Count)),
		})
	}
	return offers
}
