package services

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/stores"
)

const DefaultRemoteSyncTimeout = 10 * time.Second

// PersistenceBridge mirrors the catalog to a shared remote store and a local
// store. Either side may be nil, in which case it is skipped.
type PersistenceBridge struct {
	Remote      stores.RemoteCatalogStore
	Local       stores.LocalCatalogStore
	SyncTimeout time.Duration

	now     func() time.Time
	pending sync.WaitGroup
}

func NewPersistenceBridge(remote stores.RemoteCatalogStore, local stores.LocalCatalogStore, syncTimeout time.Duration) *PersistenceBridge {
	if syncTimeout <= 0 {
		syncTimeout = DefaultRemoteSyncTimeout
	}
	return &PersistenceBridge{
		Remote:      remote,
		Local:       local,
		SyncTimeout: syncTimeout,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// LoadRemote returns the remote snapshot. A store that has never been
// written returns an empty snapshot and no error.
func (b *PersistenceBridge) LoadRemote(ctx context.Context) (*models.CatalogSnapshot, error) {
	if b.Remote == nil {
		return &models.CatalogSnapshot{}, nil
	}
	snap, err := b.Remote.Load(ctx)
	if errors.Is(err, stores.ErrSnapshotNotFound) {
		return &models.CatalogSnapshot{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load remote catalog")
	}
	return snap, nil
}

func (b *PersistenceBridge) LoadLocal(ctx context.Context) ([]models.Product, error) {
	if b.Local == nil {
		return nil, nil
	}
	products, err := b.Local.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load local catalog")
	}
	return products, nil
}

// SaveLocal overwrites the whole local mirror.
func (b *PersistenceBridge) SaveLocal(ctx context.Context, products []models.Product) error {
	if b.Local == nil {
		return nil
	}
	return errors.Wrap(b.Local.Save(ctx, products), "save local catalog")
}

// PushRemote sends the whole collection to the remote store in the
// background. Failures are logged and dropped.
func (b *PersistenceBridge) PushRemote(products []models.Product) {
	if b.Remote == nil {
		return
	}

	snap := models.CatalogSnapshot{
		Products:  models.CloneProducts(products),
		UpdatedAt: b.now(),
	}

	b.pending.Add(1)
	go func() {
		defer b.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), b.SyncTimeout)
		defer cancel()

		saved, err := b.Remote.Save(ctx, snap)
		if err != nil {
			log.WithFields(log.Fields{
				"products": len(snap.Products),
			}).Warnf("[catalog-sync] ⚠️ remote push failed: %v", err)
			return
		}
		log.WithFields(log.Fields{
			"products": len(saved.Products),
			"version":  saved.Version,
		}).Debug("[catalog-sync] remote push done")
	}()
}

// Replace writes a snapshot to the remote store synchronously. Unlike
// PushRemote the caller sees ErrStaleSnapshot.
func (b *PersistenceBridge) Replace(ctx context.Context, snapshot models.CatalogSnapshot) (*models.CatalogSnapshot, error) {
	if snapshot.UpdatedAt.IsZero() {
		snapshot.UpdatedAt = b.now()
	}
	if b.Remote == nil {
		return &snapshot, nil
	}
	return b.Remote.Save(ctx, snapshot)
}

// Flush blocks until every background push has finished.
func (b *PersistenceBridge) Flush() {
	b.pending.Wait()
}
