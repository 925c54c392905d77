package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/stores"
)

type failingRemote struct{}

func (failingRemote) Load(ctx context.Context) (*models.CatalogSnapshot, error) {
	return nil, errors.New("remote down")
}

func (failingRemote) Save(ctx context.Context, snapshot models.CatalogSnapshot) (*models.CatalogSnapshot, error) {
	return nil, errors.New("remote down")
}

type failingLocal struct{}

func (failingLocal) Load(ctx context.Context) ([]models.Product, error) {
	return nil, errors.New("local down")
}

func (failingLocal) Save(ctx context.Context, products []models.Product) error {
	return errors.New("local down")
}

func newTestCatalog(remote stores.RemoteCatalogStore, local stores.LocalCatalogStore) *CatalogService {
	return NewCatalogService(NewPersistenceBridge(remote, local, time.Second), DefaultMinProductsPerCategory)
}

func TestHydrate(t *testing.T) {
	ctx := context.Background()

	t.Run("remote snapshot wins", func(t *testing.T) {
		remote := stores.NewMemoryCatalogStore()
		local := stores.NewMemoryLocalStore()
		_, err := remote.Save(ctx, models.CatalogSnapshot{Products: []models.Product{
			{ID: "p1", Name: "Women's Skinny Jeans", Category: "jeans", IsActive: true},
		}})
		require.NoError(t, err)

		svc := newTestCatalog(remote, local)
		require.NoError(t, svc.Hydrate(ctx))

		assert.Equal(t, SourceRemote, svc.Status().Source)
		p, ok := svc.Get("p1")
		require.True(t, ok)
		assert.Equal(t, models.WomensWear, p.MainCategory)

		mirrored, err := local.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, mirrored, 1)
	})

	t.Run("complete local mirror used when remote is empty", func(t *testing.T) {
		local := stores.NewMemoryLocalStore()
		require.NoError(t, local.Save(ctx, EnsureMinimumProductsPerCategory(SeedProducts(), 2)))

		svc := newTestCatalog(stores.NewMemoryCatalogStore(), local)
		require.NoError(t, svc.Hydrate(ctx))

		assert.Equal(t, SourceLocal, svc.Status().Source)
	})

	t.Run("incomplete local mirror falls back to seed", func(t *testing.T) {
		remote := stores.NewMemoryCatalogStore()
		local := stores.NewMemoryLocalStore()
		require.NoError(t, local.Save(ctx, SeedProducts()))

		svc := newTestCatalog(remote, local)
		require.NoError(t, svc.Hydrate(ctx))
		svc.Flush()

		assert.Equal(t, SourceSeed, svc.Status().Source)
		assert.True(t, HasCompletenessMarker(svc.List()))

		snap, err := remote.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), snap.Version)
		assert.Len(t, snap.Products, len(svc.List()))
	})

	t.Run("every source failing still serves the seed", func(t *testing.T) {
		svc := newTestCatalog(failingRemote{}, failingLocal{})
		err := svc.Hydrate(ctx)
		svc.Flush()

		assert.ErrorIs(t, err, ErrCatalogUnavailable)
		status := svc.Status()
		assert.Equal(t, SourceSeed, status.Source)
		assert.NotEmpty(t, status.LastError)
		assert.NotZero(t, status.ProductCount)
	})

	t.Run("remote failure alone is not fatal", func(t *testing.T) {
		svc := newTestCatalog(failingRemote{}, stores.NewMemoryLocalStore())
		assert.NoError(t, svc.Hydrate(ctx))
		svc.Flush()
		assert.Equal(t, SourceSeed, svc.Status().Source)
	})
}

func TestCatalogMutations(t *testing.T) {
	ctx := context.Background()
	remote := stores.NewMemoryCatalogStore()
	local := stores.NewMemoryLocalStore()
	svc := newTestCatalog(remote, local)
	svc.newID = func() string { return "fixed-id" }

	added := svc.Add(ctx, models.ProductInput{Name: " Slim Jeans ", Category: "Jeans", Gender: "men", Price: 1999})
	svc.Flush()

	t.Run("add applies defaults and normalizes", func(t *testing.T) {
		assert.Equal(t, "fixed-id", added.ID)
		assert.Equal(t, "Slim Jeans", added.Name)
		assert.Equal(t, "jeans", added.Category)
		assert.Equal(t, models.MensWear, added.MainCategory)
		assert.Equal(t, []string{"S", "M", "L", "XL"}, added.Sizes)
		assert.Equal(t, []string{"Black", "White", "Navy"}, added.Colors.Names())
		assert.Equal(t, defaultLowStockThreshold, added.LowStockThreshold)
		assert.True(t, added.IsActive)
	})

	t.Run("add is written to both stores", func(t *testing.T) {
		mirrored, err := local.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"fixed-id"}, ids(mirrored))

		snap, err := remote.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"fixed-id"}, ids(snap.Products))
	})

	t.Run("changing gender re-derives the department", func(t *testing.T) {
		women := "women"
		p, ok := svc.Update(ctx, "fixed-id", models.ProductPatch{Gender: &women})
		require.True(t, ok)
		assert.Equal(t, models.WomensWear, p.MainCategory)
	})

	t.Run("explicit department is kept", func(t *testing.T) {
		kids := models.KidsWear
		tshirts := "t-shirts"
		p, ok := svc.Update(ctx, "fixed-id", models.ProductPatch{Category: &tshirts, MainCategory: &kids})
		require.True(t, ok)
		assert.Equal(t, models.KidsWear, p.MainCategory)
	})

	t.Run("stock update", func(t *testing.T) {
		threshold := 3
		p, ok := svc.UpdateStock(ctx, "fixed-id", models.UpdateStockRequest{Stock: 2, LowStockThreshold: &threshold})
		require.True(t, ok)
		assert.Equal(t, 2, p.Stock)
		assert.Equal(t, 3, p.LowStockThreshold)
		assert.Len(t, svc.LowStock(), 1)
	})

	t.Run("unknown ids are no-ops", func(t *testing.T) {
		_, ok := svc.Update(ctx, "missing", models.ProductPatch{})
		assert.False(t, ok)
		assert.False(t, svc.Remove(ctx, "missing"))
		assert.Len(t, svc.List(), 1)
	})

	t.Run("remove", func(t *testing.T) {
		assert.True(t, svc.Remove(ctx, "fixed-id"))
		svc.Flush()
		_, ok := svc.Get("fixed-id")
		assert.False(t, ok)

		mirrored, err := local.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, mirrored)
	})
}

func TestCatalogReadsReturnCopies(t *testing.T) {
	svc := newTestCatalog(nil, nil)
	svc.products = []models.Product{{ID: "a", Name: "A", Sizes: []string{"M"}, IsActive: true}}

	list := svc.List()
	list[0].Name = "changed"
	list[0].Sizes[0] = "XL"

	p, _ := svc.Get("a")
	assert.Equal(t, "A", p.Name)
	assert.Equal(t, []string{"M"}, p.Sizes)
}

func TestCatalogQueries(t *testing.T) {
	svc := newTestCatalog(nil, nil)
	svc.products = pipelineCatalog()

	assert.ElementsMatch(t, []string{"kurti"}, ids(svc.ByCategory("KURTIS")))
	assert.ElementsMatch(t, []string{"w-tee", "kurti", "w-jeans"}, ids(svc.ByMainCategory(models.WomensWear)))
	assert.Equal(t, []string{"kurti"}, ids(svc.Search("kurti")))
	assert.Empty(t, svc.Search("zzz-nonexistent"))
	assert.Empty(t, svc.Featured())
}

func TestCatalogStats(t *testing.T) {
	svc := newTestCatalog(nil, nil)
	svc.products = []models.Product{
		{ID: "a", Price: 100, IsActive: true, IsOnSale: true, Stock: 0, LowStockThreshold: 5, MainCategory: models.MensWear},
		{ID: "b", Price: 200.5, IsFeatured: true, Stock: 20, LowStockThreshold: 5, MainCategory: models.WomensWear},
		{ID: "c", Price: 99.99, IsActive: true, Stock: 5, LowStockThreshold: 5},
	}

	stats := svc.Stats()
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 2, stats.ActiveProducts)
	assert.Equal(t, 1, stats.InactiveProducts)
	assert.Equal(t, 1, stats.OnSaleProducts)
	assert.Equal(t, 1, stats.FeaturedProducts)
	assert.Equal(t, 2, stats.LowStockProducts)
	assert.Equal(t, 1, stats.OutOfStock)
	assert.Equal(t, 25, stats.TotalInventory)
	assert.Equal(t, 133.5, stats.AveragePrice)
	assert.Equal(t, map[string]int{models.MensWear: 1, models.WomensWear: 1, models.KidsWear: 0}, stats.ByDepartment)
}

func TestCatalogOffers(t *testing.T) {
	ctx := context.Background()
	remote := stores.NewMemoryCatalogStore()
	svc := newTestCatalog(remote, stores.NewMemoryLocalStore())
	svc.products = []models.Product{{ID: "a", Price: 100, IsActive: true}}

	half := models.Offer{Title: "Half off", DiscountType: models.DiscountPercentage, DiscountValue: 50}
	active, err := svc.ApplyOffer(ctx, half)
	require.NoError(t, err)
	assert.NotEmpty(t, active.Offer.ID)

	_, err = svc.ApplyOffer(ctx, half)
	assert.ErrorIs(t, err, ErrPromotionActive)

	p, _ := svc.Get("a")
	assert.Equal(t, 50.0, p.Price)

	// the pre-promotion state survives a reload from the shared store
	svc.Flush()
	require.NoError(t, svc.Hydrate(ctx))
	require.NotNil(t, svc.ActiveOffer())

	previous := svc.ResetOffers(ctx)
	require.NotNil(t, previous)
	assert.Equal(t, "Half off", previous.Offer.Title)
	assert.Nil(t, svc.ActiveOffer())

	p, _ = svc.Get("a")
	assert.Equal(t, 100.0, p.Price)
	assert.False(t, p.IsOnSale)
	assert.Nil(t, p.OriginalPrice)
}

func TestReplaceAll(t *testing.T) {
	ctx := context.Background()
	remote := stores.NewMemoryCatalogStore()
	svc := newTestCatalog(remote, stores.NewMemoryLocalStore())

	saved, err := svc.ReplaceAll(ctx, []models.Product{{ID: "x", Name: "Kids Romper", Category: "rompers", IsActive: true}}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Version)
	assert.Equal(t, SourceRemote, svc.Status().Source)

	p, ok := svc.Get("x")
	require.True(t, ok)
	assert.Equal(t, models.KidsWear, p.MainCategory)

	stale := time.Now().Add(-time.Hour)
	_, err = svc.ReplaceAll(ctx, []models.Product{}, &stale)
	assert.ErrorIs(t, err, stores.ErrStaleSnapshot)
	assert.Len(t, svc.List(), 1)

	snap, err := svc.RemoteSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), snap.Version)
}

func TestReplaceAllDiscardsActiveOffer(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalog(stores.NewMemoryCatalogStore(), stores.NewMemoryLocalStore())
	svc.products = []models.Product{{ID: "a", Price: 100, IsActive: true}}

	_, err := svc.ApplyOffer(ctx, models.Offer{Title: "Half off", DiscountType: models.DiscountPercentage, DiscountValue: 50})
	require.NoError(t, err)
	svc.Flush()

	_, err = svc.ReplaceAll(ctx, []models.Product{{ID: "a", Name: "Linen Shirt", Category: "shirts", Price: 80, IsActive: true}}, nil)
	require.NoError(t, err)
	assert.Nil(t, svc.ActiveOffer())

	assert.Nil(t, svc.ResetOffers(ctx))
	p, ok := svc.Get("a")
	require.True(t, ok)
	assert.Equal(t, 80.0, p.Price)

	_, err = svc.ApplyOffer(ctx, models.Offer{Title: "Ten off", DiscountType: models.DiscountFixed, DiscountValue: 10})
	require.NoError(t, err)
	p, _ = svc.Get("a")
	assert.Equal(t, 70.0, p.Price)
}

func TestRemoteSnapshotFallsBackToMemory(t *testing.T) {
	svc := newTestCatalog(stores.NewMemoryCatalogStore(), nil)
	svc.products = []models.Product{{ID: "a"}}

	snap, err := svc.RemoteSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), snap.Version)
	assert.Equal(t, []string{"a"}, ids(snap.Products))
}
