package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/models"
	"go-storefront/sample"
	"go-storefront/source"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewStoreWithClient(client, time.Minute)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestNewStore(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := NewStore(context.Background(), RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = NewStore(context.Background(), RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}

func TestStore_GetSet(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	var out map[string]int
	assert.ErrorIs(t, store.Get(ctx, "missing", &out), ErrMiss)

	require.NoError(t, store.Set(ctx, "k", map[string]int{"a": 1}))
	require.NoError(t, store.Get(ctx, "k", &out))
	assert.Equal(t, map[string]int{"a": 1}, out)
	assert.Equal(t, time.Minute, mr.TTL("k"))

	require.NoError(t, store.Delete(ctx, "k"))
	assert.ErrorIs(t, store.Get(ctx, "k", &out), ErrMiss)
}

func TestQueryKey(t *testing.T) {
	a := QueryKey(models.QueryState{Search: "Laptop", Page: 0})
	b := QueryKey(models.QueryState{Search: "laptop ", Page: 1, PerPage: 12, Sort: models.SortDefault})
	assert.Equal(t, a, b, "normalized states share a key")

	c := QueryKey(models.QueryState{Search: "laptop", Page: 2})
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "products:")
}

func TestStore_QueryRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	state := models.QueryState{Category: "electronics"}

	_, err := store.GetQuery(ctx, state)
	assert.ErrorIs(t, err, ErrMiss)

	res := models.QueryResult{
		Items:       sample.Products()[:2],
		TotalCount:  2,
		TotalPages:  1,
		Page:        1,
		PerPage:     12,
		PageNumbers: []models.PageToken{models.PageNumber(1)},
	}
	require.NoError(t, store.SetQuery(ctx, state, res))

	got, err := store.GetQuery(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, res, got)
}

func TestStore_SaveCatalogInvalidates(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetQuery(ctx, models.QueryState{}, models.QueryResult{}))
	require.NoError(t, store.SetQuery(ctx, models.QueryState{Page: 2}, models.QueryResult{}))
	require.NoError(t, store.SetProduct(ctx, models.ProductDetail{Product: models.Product{ID: 3}}))

	require.NoError(t, store.SaveCatalog(ctx, sample.Products()))

	assert.Equal(t, []string{CatalogSnapshotKey}, mr.Keys())

	products, err := store.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample.Products(), products)
}

func TestStore_ProductDetail(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	d := models.ProductDetail{Product: sample.Products()[4], DisplayPrice: "$660.250", Stars: []string{"full"}}
	require.NoError(t, store.SetProduct(ctx, d))

	got, err := store.GetProduct(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, d, got)

	_, err = store.GetProduct(ctx, 6)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestSnapshot(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	snap := NewSnapshot(store)

	_, err := snap.Products(ctx)
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, store.SaveCatalog(ctx, sample.Products()))

	all, err := snap.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 20)

	p, err := snap.Product(ctx, 14)
	require.NoError(t, err)
	assert.Equal(t, 999.99, p.Price)

	_, err = snap.Product(ctx, 99)
	assert.ErrorIs(t, err, source.ErrNotFound)
	assert.NotErrorIs(t, err, ErrMiss)

	elec, err := snap.ProductsByCategory(ctx, "electronics")
	require.NoError(t, err)
	assert.Len(t, elec, 6)

	cats, err := snap.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"men's clothing", "jewelery", "electronics", "women's clothing"}, cats)
}
