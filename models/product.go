package models

// Product represents a catalog entry as served by the product source.
// Prices are denominated in USD.
type Product struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Rating      Rating   `json:"rating"`
}

// Rating is the aggregated customer rating of a product
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// CategorySummary describes one category and how many products it holds
type CategorySummary struct {
	Key   Category `json:"key"`
	Label string   `json:"label"`
	Count int      `json:"count"`
	Image string   `json:"image,omitempty"`
}

// Specification is a labelled attribute shown on the product detail view
type Specification struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProductDetail is a product together with its display attributes
type ProductDetail struct {
	Product
	DisplayPrice   string          `json:"display_price"`
	CategoryLabel  string          `json:"category_label"`
	Stars          []string        `json:"stars"`
	Specifications []Specification `json:"specifications"`
}

// ProductCard is a product with the strings shown on listing grids
type ProductCard struct {
	Product
	DisplayPrice  string `json:"display_price"`
	CategoryLabel string `json:"category_label"`
	RatingLabel   string `json:"rating_label"`
}

// Offer is a discounted product card
type Offer struct {
	ProductCard
	Discount      float64 `json:"discount"`
	DiscountLabel string  `json:"discount_label"`
	OfferPrice    string  `json:"offer_price"`
	ReviewCount   string  `json:"review_count"`
}
