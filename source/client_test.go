package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/models"
)

const productsJSON = `[
	{"id":1,"title":"Mochila para Laptop","price":109.95,"description":"Mochila","category":"men's clothing",
	 "image":"https://fakestoreapi.com/img/1.jpg","rating":{"rate":3.9,"count":120}},
	{"id":9,"title":"Disco Duro","price":64,"description":"USB 3.0","category":"electronics",
	 "image":"https://fakestoreapi.com/img/9.jpg","rating":{"rate":0,"count":0}}
]`

func newServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second)
}

func TestClient_Products(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(productsJSON))
	})

	got, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.Product{
		ID:          1,
		Title:       "Mochila para Laptop",
		Price:       109.95,
		Description: "Mochila",
		Category:    models.CategoryMensClothing,
		Image:       "https://fakestoreapi.com/img/1.jpg",
		Rating:      models.Rating{Rate: 3.9, Count: 120},
	}, got[0])
	assert.Equal(t, 0.0, got[1].Rating.Rate, "zero values are valid when present")
}

func TestClient_ProductsContractViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing price", `[{"id":1,"title":"t","description":"d","category":"electronics","image":"https://x.io/a.jpg","rating":{"rate":1,"count":1}}]`},
		{"missing rating", `[{"id":1,"title":"t","price":1,"description":"d","category":"electronics","image":"https://x.io/a.jpg"}]`},
		{"missing rate", `[{"id":1,"title":"t","price":1,"description":"d","category":"electronics","image":"https://x.io/a.jpg","rating":{"count":1}}]`},
		{"rate out of range", `[{"id":1,"title":"t","price":1,"description":"d","category":"electronics","image":"https://x.io/a.jpg","rating":{"rate":7,"count":1}}]`},
		{"negative price", `[{"id":1,"title":"t","price":-1,"description":"d","category":"electronics","image":"https://x.io/a.jpg","rating":{"rate":1,"count":1}}]`},
		{"unknown category", `[{"id":1,"title":"t","price":1,"description":"d","category":"toys","image":"https://x.io/a.jpg","rating":{"rate":1,"count":1}}]`},
		{"null record", `[null]`},
		{"duplicate id", `[
			{"id":1,"title":"t","price":1,"description":"d","category":"electronics","image":"https://x.io/a.jpg","rating":{"rate":1,"count":1}},
			{"id":1,"title":"u","price":2,"description":"d","category":"electronics","image":"https://x.io/b.jpg","rating":{"rate":1,"count":1}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			_, err := c.Products(context.Background())
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestClient_ProductsHTTPFailure(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Products(context.Background())
	var ferr *FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, http.StatusBadGateway, ferr.Status)
	assert.Contains(t, err.Error(), "http 502")
}

func TestClient_ProductsBadJSON(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	})
	_, err := c.Products(context.Background())
	assert.Error(t, err)
}

func TestClient_Timeout(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(done)

	c := NewClient(srv.URL, 50*time.Millisecond)
	_, err := c.Products(context.Background())
	var ferr *FetchError
	require.ErrorAs(t, err, &ferr)
}

func TestClient_Product(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/9":
			w.Write([]byte(`{"id":9,"title":"Disco Duro","price":64,"description":"USB","category":"electronics",
				"image":"https://fakestoreapi.com/img/9.jpg","rating":{"rate":3.3,"count":203}}`))
		case "/products/404":
			w.WriteHeader(http.StatusNotFound)
		default:
			// FakeStore answers unknown ids with an empty body
			w.WriteHeader(http.StatusOK)
		}
	})

	p, err := c.Product(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Disco Duro", p.Title)

	_, err = c.Product(context.Background(), 77)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Product(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Product(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_CategoriesAndByCategory(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.EscapedPath() {
		case "/products/categories":
			w.Write([]byte(`["electronics","jewelery","men's clothing","women's clothing"]`))
		case "/products/category/men%27s%20clothing", "/products/category/men's%20clothing":
			w.Write([]byte(productsJSON))
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	})

	cats, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 4)

	got, err := c.ProductsByCategory(context.Background(), "men's clothing")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStatic(t *testing.T) {
	s := NewStatic([]models.Product{
		{ID: 1, Category: models.CategoryJewelery},
		{ID: 2, Category: models.CategoryElectronics},
		{ID: 3, Category: models.CategoryJewelery},
	})
	ctx := context.Background()

	all, err := s.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	p, err := s.Product(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryElectronics, p.Category)

	_, err = s.Product(ctx, 9)
	assert.True(t, errors.Is(err, ErrNotFound))

	jewels, _ := s.ProductsByCategory(ctx, "jewelery")
	assert.Len(t, jewels, 2)

	cats, _ := s.Categories(ctx)
	assert.Equal(t, []string{"jewelery", "electronics"}, cats)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Products(cancelled)
	assert.Error(t, err)
}
