package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

func TestNextSnapshot(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	first, err := nextSnapshot(nil, models.CatalogSnapshot{}, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Version)
	assert.Equal(t, now, first.UpdatedAt)
	assert.NotNil(t, first.Products)

	second, err := nextSnapshot(&first, models.CatalogSnapshot{UpdatedAt: now.Add(time.Minute)}, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Version)

	_, err = nextSnapshot(&second, models.CatalogSnapshot{UpdatedAt: now}, now)
	assert.ErrorIs(t, err, ErrStaleSnapshot)

	same, err := nextSnapshot(&second, models.CatalogSnapshot{UpdatedAt: second.UpdatedAt}, now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), same.Version)
}

func TestMemoryCatalogStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCatalogStore()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	t0 := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	saved, err := store.Save(ctx, models.CatalogSnapshot{Products: []models.Product{{ID: "a"}}, UpdatedAt: t0})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Version)

	t.Run("older writer loses", func(t *testing.T) {
		_, err := store.Save(ctx, models.CatalogSnapshot{Products: []models.Product{}, UpdatedAt: t0.Add(-time.Second)})
		assert.ErrorIs(t, err, ErrStaleSnapshot)

		snap, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, snap.Products, 1)
	})

	t.Run("newer writer wins", func(t *testing.T) {
		saved, err := store.Save(ctx, models.CatalogSnapshot{Products: []models.Product{{ID: "b"}, {ID: "c"}}, UpdatedAt: t0.Add(time.Second)})
		require.NoError(t, err)
		assert.Equal(t, int64(2), saved.Version)
	})

	t.Run("loaded snapshot is a copy", func(t *testing.T) {
		snap, err := store.Load(ctx)
		require.NoError(t, err)
		snap.Products[0].ID = "mutated"

		again, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "b", again.Products[0].ID)
	})
}

func TestMemoryLocalStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryLocalStore()

	products, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	require.NoError(t, store.Save(ctx, []models.Product{{ID: "a"}}))
	products, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestArchiveKey(t *testing.T) {
	snap := models.CatalogSnapshot{
		Version:   42,
		UpdatedAt: time.Date(2025, 3, 9, 8, 7, 6, 0, time.UTC),
	}
	assert.Equal(t, "catalog/snapshots/catalog-v000042-20250309T080706Z.json", ArchiveKey("catalog/snapshots/", snap))
}
