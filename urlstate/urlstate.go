// Package urlstate maps catalog query state to and from URL query strings.
//
// Parse and Serialize are pure. Binding keeps a QueryState in sync with a
// History, which stands in for the address bar of whatever front end drives
// the catalog.
package urlstate

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"go-storefront/models"
)

// Query parameter names
const (
	ParamSearch    = "search"
	ParamCategory  = "category"
	ParamMinPrice  = "min_price"
	ParamMaxPrice  = "max_price"
	ParamMinRating = "min_rating"
	ParamSort      = "sort"
	ParamPage      = "page"
)

// Unbounded is the upper price bound of a range given only a minimum
const Unbounded = math.MaxFloat64

// ParseURL parses raw, which may be a full URL, a path with a query or a bare query string
func ParseURL(raw string) (models.QueryState, error) {
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	query := raw
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		query = raw[i+1:]
	} else if !strings.Contains(raw, "=") {
		query = ""
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return models.QueryState{}, err
	}
	return Parse(values), nil
}

// Parse builds a normalized QueryState from query values. Malformed numeric
// values are ignored rather than rejected.
func Parse(values url.Values) models.QueryState {
	state := models.QueryState{
		Search:   values.Get(ParamSearch),
		Category: values.Get(ParamCategory),
		Sort:     models.ParseSortKey(values.Get(ParamSort)),
	}

	minPrice, hasMin := positive(values.Get(ParamMinPrice))
	maxPrice, hasMax := positive(values.Get(ParamMaxPrice))
	if hasMin || hasMax {
		r := models.PriceRange{Min: minPrice, Max: Unbounded}
		if hasMax {
			r.Max = maxPrice
		}
		if r.Min <= r.Max {
			state.Price = &r
		}
	}

	if rating, ok := positive(values.Get(ParamMinRating)); ok && rating <= 5 {
		state.MinRating = rating
	}
	if page, err := strconv.Atoi(values.Get(ParamPage)); err == nil && page > 1 {
		state.Page = page
	}
	return state.Normalized()
}

// Values encodes state, leaving out every parameter at its empty or default value
func Values(state models.QueryState) url.Values {
	state = state.Normalized()
	values := url.Values{}
	if state.Search != "" {
		values.Set(ParamSearch, state.Search)
	}
	if state.Category != "" {
		values.Set(ParamCategory, state.Category)
	}
	if state.Price != nil {
		if state.Price.Min > 0 {
			values.Set(ParamMinPrice, formatNumber(state.Price.Min))
		}
		if state.Price.Max < Unbounded {
			values.Set(ParamMaxPrice, formatNumber(state.Price.Max))
		}
	}
	if state.MinRating > 0 {
		values.Set(ParamMinRating, formatNumber(state.MinRating))
	}
	if state.Sort != models.SortDefault {
		values.Set(ParamSort, string(state.Sort))
	}
	if state.Page > 1 {
		values.Set(ParamPage, strconv.Itoa(state.Page))
	}
	return values
}

// Serialize returns path followed by the encoded state. Parameters are written
// in sorted key order so equal states always produce equal URLs.
func Serialize(path string, state models.QueryState) string {
	encoded := Values(state).Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

func positive(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
