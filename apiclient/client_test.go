package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/routes/dev_routes"
	"github.com/developer2iverto/Dresscollections-sub000/routes/ecommerce_routes"
	"github.com/developer2iverto/Dresscollections-sub000/services"
	"github.com/developer2iverto/Dresscollections-sub000/stores"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bridge := services.NewPersistenceBridge(stores.NewMemoryCatalogStore(), stores.NewMemoryLocalStore(), time.Second)
	catalog := services.NewCatalogService(bridge, 2)
	require.NoError(t, catalog.Hydrate(context.Background()))
	catalog.Flush()
	services.InitCatalogService(catalog)

	r := gin.New()
	api := r.Group("/api/v1")
	ecommerce_routes.SetupStorefrontRoutes(api)
	dev_routes.SetupDevRoutes(api)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientAgainstServer(t *testing.T) {
	srv := newTestServer(t)
	client := New(srv.URL+"/api/v1/", "")
	ctx := context.Background()

	t.Run("list products", func(t *testing.T) {
		products, meta, err := client.ListProducts(ctx, ProductQuery{MainCategory: models.MensWear, Category: "t-shirts"})
		require.NoError(t, err)
		require.NotEmpty(t, products)
		for _, p := range products {
			assert.Equal(t, models.MensWear, p.MainCategory)
		}
		require.NotNil(t, meta)
		assert.Equal(t, len(products), meta.Total)
	})

	t.Run("missing product is a 404 error", func(t *testing.T) {
		_, err := client.GetProduct(ctx, "nope")
		assert.True(t, IsStatus(err, http.StatusNotFound))
		assert.ErrorContains(t, err, "Product not found")
	})

	t.Run("categories and filters", func(t *testing.T) {
		tree, err := client.GetCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, tree, 3)

		facets, err := client.GetFilters(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, facets.Categories)
	})

	t.Run("dev catalog round trip", func(t *testing.T) {
		snap, err := client.GetDevCatalog(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(1), snap.Version)

		saved, err := client.PutDevCatalog(ctx, snap.Products[:1], nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2), saved.Version)

		_, err = client.PutDevCatalog(ctx, snap.Products, &snap.UpdatedAt)
		assert.True(t, IsStatus(err, http.StatusConflict))

		status, err := client.CatalogStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, status.ProductCount)
	})
}

func TestClientErrorConvention(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Invalid request","error":true,"details":[{"field":"Title","msg":"title is required"},{"msg":"discountValue must be at least 0"}]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "secret-token")
	_, err := client.ApplyOffer(context.Background(), models.ApplyOfferRequest{})

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid request; title is required; discountValue must be at least 0", apiErr.Message)
}

func TestClientPrefersErrorString(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"stale snapshot","message":"ignored"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "").PutDevCatalog(context.Background(), nil, nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "stale snapshot", apiErr.Message)
}

func TestClientRetriesGetOnServerError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"message":"ok","data":{"source":"remote","productCount":7}}`))
	}))
	defer srv.Close()

	status, err := New(srv.URL, "").CatalogStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, status.ProductCount)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "").GetDevCatalog(context.Background())
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
