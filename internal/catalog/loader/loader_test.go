package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/catalog/domain"
)

const catalogJSON = `{
  "products": [
    {"id": 1, "title": "Essence Mascara", "category": "beauty", "brand": "Essence", "price": 9.99, "rating": 4.94, "stock": 5},
    {"id": 2, "title": "Eyeshadow Palette", "category": "beauty", "price": 19.99, "brand": null},
    {"id": 3, "title": "Apple", "category": "groceries", "price": 1.99, "stock": 0, "thumbnail": "https://cdn/apple.png"}
  ],
  "total": 3, "skip": 0, "limit": 30
}`

type sinkFunc func([]domain.Product)

func (f sinkFunc) SetCatalog(p []domain.Product) { f(p) }

type stubSource struct {
	calls    atomic.Int32
	products []domain.Product
	err      error
}

func (s *stubSource) Fetch(context.Context) ([]domain.Product, error) {
	s.calls.Add(1)
	return s.products, s.err
}

func TestHTTPSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer srv.Close()

	products, err := NewHTTPSource(srv.URL, 1).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, "Essence", products[0].Brand.String())
	assert.Equal(t, "", products[1].Brand.String())
	assert.False(t, products[2].InStock())
}

func TestHTTPSourceToleratesLooselyTypedNumbers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products":[{"id":1,"price":10},{"id":2,"price":"12.5","rating":null}]}`))
	}))
	defer srv.Close()

	products, err := NewHTTPSource(srv.URL, 1).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 10.0, products[0].Price)
	assert.Equal(t, 2, products[1].ID)
	assert.Equal(t, 12.5, products[1].Price)
	assert.Zero(t, products[1].Rating)
}

func TestHTTPSourceRetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer srv.Close()

	products, err := NewHTTPSource(srv.URL, 5).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 3)
	assert.Equal(t, int32(3), hits.Load())
}

func TestHTTPSourceDoesNotRetryClientErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, 5).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestHTTPSourceRejectsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products": [`))
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, 3).Fetch(context.Background())
	assert.Error(t, err)
}

func TestHTTPSourceEmptyEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	products, err := NewHTTPSource(srv.URL, 1).Fetch(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestLoadPushesIntoSink(t *testing.T) {
	src := &stubSource{products: []domain.Product{{ID: 1}, {ID: 2}}}

	var got []domain.Product
	require.NoError(t, Load(context.Background(), src, sinkFunc(func(p []domain.Product) { got = p })))
	assert.Len(t, got, 2)
}

func TestLoadLeavesSinkUntouchedOnError(t *testing.T) {
	src := &stubSource{err: errors.New("offline")}

	called := false
	err := Load(context.Background(), src, sinkFunc(func([]domain.Product) { called = true }))
	require.Error(t, err)
	assert.False(t, called)
}

func newCache(t *testing.T, next Source) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(next, client, time.Minute), mr
}

func TestRedisCacheReadThrough(t *testing.T) {
	src := &stubSource{products: []domain.Product{{ID: 1, Title: "Lamp", Price: 10}}}
	cache, mr := newCache(t, src)
	ctx := context.Background()

	first, err := cache.Fetch(ctx)
	require.NoError(t, err)
	second, err := cache.Fetch(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), src.calls.Load())
	assert.True(t, mr.Exists(DefaultCacheKey))
	assert.Equal(t, time.Minute, mr.TTL(DefaultCacheKey))
}

func TestRedisCacheInvalidate(t *testing.T) {
	src := &stubSource{products: []domain.Product{{ID: 1}}}
	cache, _ := newCache(t, src)
	ctx := context.Background()

	_, err := cache.Fetch(ctx)
	require.NoError(t, err)
	require.NoError(t, cache.Invalidate(ctx))
	_, err = cache.Fetch(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(2), src.calls.Load())
}

func TestRedisCacheDiscardsCorruptEntry(t *testing.T) {
	src := &stubSource{products: []domain.Product{{ID: 9}}}
	cache, mr := newCache(t, src)
	require.NoError(t, mr.Set(DefaultCacheKey, "not json"))

	products, err := cache.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, products[0].ID)
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestRedisCacheFallsThroughWhenRedisIsDown(t *testing.T) {
	src := &stubSource{products: []domain.Product{{ID: 4}}}
	cache, mr := newCache(t, src)
	mr.Close()

	products, err := cache.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestRedisCachePropagatesSourceErrors(t *testing.T) {
	src := &stubSource{err: errors.New("boom")}
	cache, mr := newCache(t, src)

	_, err := cache.Fetch(context.Background())
	require.Error(t, err)
	assert.False(t, mr.Exists(DefaultCacheKey))
}

func TestRefreshInvalidatesCachingSource(t *testing.T) {
	src := &stubSource{products: []domain.Product{{ID: 1}}}
	cache, _ := newCache(t, src)
	ctx := context.Background()
	sink := sinkFunc(func([]domain.Product) {})

	require.NoError(t, Refresh(ctx, cache, sink, false))
	require.NoError(t, Refresh(ctx, cache, sink, false))
	assert.Equal(t, int32(1), src.calls.Load(), "cached without invalidation")

	require.NoError(t, Refresh(ctx, cache, sink, true))
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestRefreshPlainSource(t *testing.T) {
	src := &stubSource{products: []domain.Product{{ID: 1}, {ID: 2}, {ID: 3}}}

	var got []domain.Product
	require.NoError(t, Refresh(context.Background(), src, sinkFunc(func(p []domain.Product) { got = p }), true))
	assert.Len(t, got, 3)
}
