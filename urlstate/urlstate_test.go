package urlstate

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  models.QueryState
	}{
		{
			name:  "empty",
			query: "",
			want:  models.QueryState{}.Normalized(),
		},
		{
			name:  "search and category",
			query: "search=laptop&category=electronics",
			want:  models.QueryState{Search: "laptop", Category: "electronics"}.Normalized(),
		},
		{
			name:  "every field",
			query: "search=ssd&category=electronics&min_price=10000&max_price=30000&min_rating=4&sort=price-desc&page=3",
			want: models.QueryState{
				Search:    "ssd",
				Category:  "electronics",
				Price:     &models.PriceRange{Min: 10000, Max: 30000},
				MinRating: 4,
				Sort:      models.SortPriceDesc,
				Page:      3,
			}.Normalized(),
		},
		{
			name:  "only min price",
			query: "min_price=5000",
			want:  models.QueryState{Price: &models.PriceRange{Min: 5000, Max: Unbounded}}.Normalized(),
		},
		{
			name:  "only max price",
			query: "max_price=5000",
			want:  models.QueryState{Price: &models.PriceRange{Min: 0, Max: 5000}}.Normalized(),
		},
		{
			name:  "inverted price range ignored",
			query: "min_price=9000&max_price=100",
			want:  models.QueryState{}.Normalized(),
		},
		{
			name:  "malformed numbers ignored",
			query: "min_price=abc&min_rating=-1&page=zero&sort=cheapest",
			want:  models.QueryState{}.Normalized(),
		},
		{
			name:  "rating above five ignored",
			query: "min_rating=7",
			want:  models.QueryState{}.Normalized(),
		},
		{
			name:  "unknown category kept",
			query: "category=toys",
			want:  models.QueryState{Category: "toys"}.Normalized(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Parse(values))
		})
	}
}

func TestParseURL(t *testing.T) {
	for _, raw := range []string{
		"https://tienda.example/productos?search=mochila&page=2#top",
		"/productos?search=mochila&page=2",
		"search=mochila&page=2",
	} {
		state, err := ParseURL(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, "mochila", state.Search, raw)
		assert.Equal(t, 2, state.Page, raw)
	}

	state, err := ParseURL("/productos")
	require.NoError(t, err)
	assert.Equal(t, models.QueryState{}.Normalized(), state)

	_, err = ParseURL("/productos?search=%zz")
	assert.Error(t, err)
}

func TestSerialize_OmitsDefaults(t *testing.T) {
	assert.Equal(t, "/productos", Serialize("/productos", models.QueryState{}))
	assert.Equal(t, "/productos", Serialize("/productos", models.QueryState{Sort: models.SortDefault, Page: 1}))
	assert.Equal(t, "/productos?search=laptop", Serialize("/productos", models.QueryState{Search: "laptop"}))
	assert.Equal(t, "/?category=men%27s+clothing",
		Serialize("/", models.QueryState{Category: "men's clothing"}))
	assert.Equal(t, "/?min_price=10000",
		Serialize("/", models.QueryState{Price: &models.PriceRange{Min: 10000, Max: Unbounded}}))
	assert.Equal(t, "/?max_price=30000.5&min_rating=4.5&page=2&sort=rating",
		Serialize("/", models.QueryState{
			Price:     &models.PriceRange{Max: 30000.5},
			MinRating: 4.5,
			Sort:      models.SortRating,
			Page:      2,
		}))
}

func TestRoundTrip(t *testing.T) {
	states := []models.QueryState{
		{},
		{Search: "Camiseta slim", Category: "men's clothing"},
		{Price: &models.PriceRange{Min: 7553, Max: 949991}, MinRating: 3, Sort: models.SortName, Page: 4},
		{Price: &models.PriceRange{Min: 100, Max: Unbounded}, Sort: models.SortPriceAsc},
		{Search: "a&b=c?", Sort: models.SortPriceDesc},
	}
	for _, s := range states {
		s = s.Normalized()
		got, err := ParseURL(Serialize("/productos", s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestBinding(t *testing.T) {
	history := NewMemoryHistory("/productos?search=laptop")
	b := NewBinding(history)

	assert.Equal(t, "laptop", b.State().Search)
	assert.Equal(t, "/productos?search=laptop", b.URL())

	b.Update(func(s *models.QueryState) {
		s.Category = "electronics"
	})
	assert.Equal(t, "/productos?category=electronics&search=laptop", history.Current())

	b.Update(func(s *models.QueryState) {
		s.Search = ""
	})
	assert.Equal(t, "/productos?category=electronics", history.Current())
	assert.Len(t, history.Entries(), 3)

	// an update that changes nothing does not push
	b.Update(func(s *models.QueryState) {})
	assert.Len(t, history.Entries(), 3)

	prev, ok := history.Back()
	require.True(t, ok)
	assert.Equal(t, "/productos?category=electronics&search=laptop", prev)
	assert.Equal(t, "laptop", b.Sync().Search)
}

func TestBinding_UpdateDoesNotAliasPrice(t *testing.T) {
	b := NewBinding(NewMemoryHistory("/?min_price=100&max_price=200"))
	before := b.State()

	b.Update(func(s *models.QueryState) {
		s.Price.Max = 150
	})

	assert.Equal(t, 200.0, before.Price.Max)
	assert.Equal(t, 150.0, b.State().Price.Max)
}

func TestMemoryHistory_BackKeepsFirst(t *testing.T) {
	h := NewMemoryHistory("/")
	_, ok := h.Back()
	assert.False(t, ok)
	assert.Equal(t, "/", h.Current())
}
