package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/stores"
)

func TestPersistenceBridgeWithoutStores(t *testing.T) {
	ctx := context.Background()
	bridge := NewPersistenceBridge(nil, nil, 0)

	assert.Equal(t, DefaultRemoteSyncTimeout, bridge.SyncTimeout)

	snap, err := bridge.LoadRemote(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Products)

	local, err := bridge.LoadLocal(ctx)
	require.NoError(t, err)
	assert.Nil(t, local)

	assert.NoError(t, bridge.SaveLocal(ctx, []models.Product{{ID: "a"}}))
	bridge.PushRemote([]models.Product{{ID: "a"}})
	bridge.Flush()

	replaced, err := bridge.Replace(ctx, models.CatalogSnapshot{Products: []models.Product{{ID: "a"}}})
	require.NoError(t, err)
	assert.False(t, replaced.UpdatedAt.IsZero())
}

func TestPersistenceBridgeEmptyRemote(t *testing.T) {
	bridge := NewPersistenceBridge(stores.NewMemoryCatalogStore(), nil, time.Second)

	snap, err := bridge.LoadRemote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), snap.Version)
}

func TestPersistenceBridgeWrapsRemoteErrors(t *testing.T) {
	bridge := NewPersistenceBridge(failingRemote{}, failingLocal{}, time.Second)

	_, err := bridge.LoadRemote(context.Background())
	assert.ErrorContains(t, err, "load remote catalog")

	_, err = bridge.LoadLocal(context.Background())
	assert.ErrorContains(t, err, "local down")

	// background failures are logged, never surfaced
	bridge.PushRemote([]models.Product{{ID: "a"}})
	bridge.Flush()
}

func TestPersistenceBridgePushIsSnapshotOfCaller(t *testing.T) {
	remote := stores.NewMemoryCatalogStore()
	bridge := NewPersistenceBridge(remote, nil, time.Second)

	products := []models.Product{{ID: "a", Name: "before"}}
	bridge.PushRemote(products)
	products[0].Name = "after"
	bridge.Flush()

	snap, err := remote.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "before", snap.Products[0].Name)
	assert.Equal(t, int64(1), snap.Version)
}
