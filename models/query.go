package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultItemsPerPage is the page size used by the catalog views
const DefaultItemsPerPage = 12

// Ellipsis marks a gap in a condensed page-number list
const Ellipsis = "…"

// SortKey selects the ordering applied to filtered products
type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	SortName      SortKey = "name"
)

// SortOption pairs a sort key with its dropdown label
type SortOption struct {
	Key   SortKey `json:"key"`
	Label string  `json:"label"`
}

// SortOptions lists the supported orderings
var SortOptions = []SortOption{
	{Key: SortDefault, Label: "Predeterminado"},
	{Key: SortPriceAsc, Label: "Precio: Menor a Mayor"},
	{Key: SortPriceDesc, Label: "Precio: Mayor a Menor"},
	{Key: SortRating, Label: "Mejor Valorados"},
	{Key: SortName, Label: "Nombre A-Z"},
}

// RatingOption is a selectable minimum rating
type RatingOption struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// RatingOptions lists the minimum rating choices
var RatingOptions = []RatingOption{
	{Value: 0, Label: "Todas las valoraciones"},
	{Value: 4, Label: "4★ o más"},
	{Value: 3, Label: "3★ o más"},
	{Value: 2, Label: "2★ o más"},
	{Value: 1, Label: "1★ o más"},
}

// ParseSortKey maps raw input to a known sort key. Unknown values fall back to SortDefault.
func ParseSortKey(raw string) SortKey {
	switch k := SortKey(strings.TrimSpace(raw)); k {
	case SortPriceAsc, SortPriceDesc, SortRating, SortName:
		return k
	default:
		return SortDefault
	}
}

// PriceRange is an inclusive range in the display currency
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within the range, bounds included
func (r PriceRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Covers reports whether r includes every value of other
func (r PriceRange) Covers(other PriceRange) bool {
	return r.Min <= other.Min && r.Max >= other.Max
}

// WithMinInput applies a typed minimum. Input that is not a positive number falls back
// to bounds.Min. A minimum above the current maximum is rejected and the range is
// returned unchanged with ok=false.
func (r PriceRange) WithMinInput(input string, bounds PriceRange) (PriceRange, bool) {
	v, valid := parsePriceInput(input)
	if !valid {
		v = bounds.Min
	}
	if v > r.Max {
		return r, false
	}
	return PriceRange{Min: v, Max: r.Max}, true
}

// WithMaxInput applies a typed maximum, mirroring WithMinInput
func (r PriceRange) WithMaxInput(input string, bounds PriceRange) (PriceRange, bool) {
	v, valid := parsePriceInput(input)
	if !valid {
		v = bounds.Max
	}
	if v < r.Min {
		return r, false
	}
	return PriceRange{Min: r.Min, Max: v}, true
}

func parsePriceInput(input string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return 0, false
	}
	return v, true
}

func (r PriceRange) String() string {
	return fmt.Sprintf("%g-%g", r.Min, r.Max)
}

// QueryState holds every input of the catalog query
type QueryState struct {
	Search    string      `json:"search,omitempty"`
	Category  string      `json:"category,omitempty"`
	Price     *PriceRange `json:"price,omitempty"`
	MinRating float64     `json:"min_rating,omitempty"`
	Sort      SortKey     `json:"sort,omitempty"`
	Page      int         `json:"page"`
	PerPage   int         `json:"per_page"`
}

// Normalized returns a copy with defaults applied: page >= 1, a positive page size
// and a known sort key.
func (s QueryState) Normalized() QueryState {
	if s.Page < 1 {
		s.Page = 1
	}
	if s.PerPage < 1 {
		s.PerPage = DefaultItemsPerPage
	}
	s.Sort = ParseSortKey(string(s.Sort))
	if s.MinRating < 0 {
		s.MinRating = 0
	}
	return s
}

// FilterKey identifies the inputs that decide which products match, ignoring sort and page.
func (s QueryState) FilterKey() string {
	price := ""
	if s.Price != nil {
		price = s.Price.String()
	}
	return fmt.Sprintf("q=%s|c=%s|p=%s|r=%g",
		strings.ToLower(strings.TrimSpace(s.Search)), s.Category, price, s.MinRating)
}

// PageToken is either a page number or an ellipsis in a condensed page list
type PageToken struct {
	Page     int
	Ellipsis bool
}

// PageNumber returns a token for page n
func PageNumber(n int) PageToken {
	return PageToken{Page: n}
}

// Gap returns an ellipsis token
func Gap() PageToken {
	return PageToken{Ellipsis: true}
}

func (t PageToken) String() string {
	if t.Ellipsis {
		return Ellipsis
	}
	return strconv.Itoa(t.Page)
}

// MarshalJSON encodes page numbers as JSON numbers and gaps as the ellipsis string
func (t PageToken) MarshalJSON() ([]byte, error) {
	if t.Ellipsis {
		return json.Marshal(Ellipsis)
	}
	return json.Marshal(t.Page)
}

// UnmarshalJSON accepts either a number or the ellipsis string
func (t *PageToken) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*t = PageNumber(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("page token: %w", err)
	}
	if s != Ellipsis {
		return fmt.Errorf("page token: unexpected %q", s)
	}
	*t = Gap()
	return nil
}

// QueryResult is the paginated, ordered output of the catalog query
type QueryResult struct {
	Items        []Product   `json:"items"`
	TotalCount   int         `json:"total_count"`
	TotalPages   int         `json:"total_pages"`
	Page         int         `json:"page"`
	PerPage      int         `json:"per_page"`
	PageNumbers  []PageToken `json:"page_numbers"`
	FirstItem    int         `json:"first_item"`
	LastItem     int         `json:"last_item"`
	CatalogCount int         `json:"catalog_count"`
}

// Empty reports whether no product matched the query
func (r QueryResult) Empty() bool {
	return r.TotalCount == 0
}
