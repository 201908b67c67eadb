package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortKey("price-asc"))
	assert.Equal(t, SortName, ParseSortKey(" name "))
	assert.Equal(t, SortDefault, ParseSortKey(""))
	assert.Equal(t, SortDefault, ParseSortKey("price_asc"))
}

func TestPriceRange_WithMinInput(t *testing.T) {
	bounds := PriceRange{Min: 0, Max: 1000000}
	current := PriceRange{Min: 1000, Max: 50000}

	got, ok := current.WithMinInput("2500", bounds)
	assert.True(t, ok)
	assert.Equal(t, PriceRange{Min: 2500, Max: 50000}, got)

	got, ok = current.WithMinInput("abc", bounds)
	assert.True(t, ok, "non-numeric input falls back to the bound")
	assert.Equal(t, PriceRange{Min: 0, Max: 50000}, got)

	got, ok = current.WithMinInput("", bounds)
	assert.True(t, ok)
	assert.Equal(t, 0.0, got.Min)

	got, ok = current.WithMinInput("60000", bounds)
	assert.False(t, ok, "min above max is rejected")
	assert.Equal(t, current, got)

	got, ok = current.WithMinInput("NaN", bounds)
	assert.True(t, ok)
	assert.Equal(t, 0.0, got.Min)
}

func TestPriceRange_WithMaxInput(t *testing.T) {
	bounds := PriceRange{Min: 0, Max: 1000000}
	current := PriceRange{Min: 1000, Max: 50000}

	got, ok := current.WithMaxInput("20000", bounds)
	assert.True(t, ok)
	assert.Equal(t, PriceRange{Min: 1000, Max: 20000}, got)

	got, ok = current.WithMaxInput("x", bounds)
	assert.True(t, ok)
	assert.Equal(t, PriceRange{Min: 1000, Max: 1000000}, got)

	got, ok = current.WithMaxInput("500", bounds)
	assert.False(t, ok)
	assert.Equal(t, current, got)
}

func TestPriceRange_Contains(t *testing.T) {
	r := PriceRange{Min: 10, Max: 20}
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(20))
	assert.False(t, r.Contains(9.99))
	assert.False(t, r.Contains(20.01))
	assert.True(t, PriceRange{Min: 0, Max: 30}.Covers(r))
	assert.False(t, PriceRange{Min: 11, Max: 30}.Covers(r))
}

func TestQueryState_Normalized(t *testing.T) {
	s := QueryState{Page: -1, PerPage: 0, Sort: "weird", MinRating: -2}.Normalized()
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, DefaultItemsPerPage, s.PerPage)
	assert.Equal(t, SortDefault, s.Sort)
	assert.Zero(t, s.MinRating)
}

func TestQueryState_FilterKey(t *testing.T) {
	a := QueryState{Search: "Laptop ", Sort: SortName, Page: 3}
	b := QueryState{Search: "laptop", Sort: SortPriceAsc, Page: 1}
	assert.Equal(t, a.FilterKey(), b.FilterKey(), "sort and page do not affect filtering")

	c := QueryState{Search: "laptop", Price: &PriceRange{Min: 1, Max: 2}}
	assert.NotEqual(t, b.FilterKey(), c.FilterKey())
}

func TestPageToken_JSON(t *testing.T) {
	tokens := []PageToken{PageNumber(1), Gap(), PageNumber(9)}
	data, err := json.Marshal(tokens)
	require.NoError(t, err)
	assert.JSONEq(t, `[1,"…",9]`, string(data))

	var back []PageToken
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, tokens, back)

	var bad PageToken
	assert.Error(t, json.Unmarshal([]byte(`"x"`), &bad))
}
