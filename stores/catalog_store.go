package stores

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

var (
	ErrStaleSnapshot    = errors.New("catalog snapshot is older than the stored one")
	ErrSnapshotNotFound = errors.New("no catalog snapshot stored")
)

// RemoteCatalogStore is the shared, cross-session copy of the catalog.
type RemoteCatalogStore interface {
	Load(ctx context.Context) (*models.CatalogSnapshot, error)
	Save(ctx context.Context, snapshot models.CatalogSnapshot) (*models.CatalogSnapshot, error)
}

// LocalCatalogStore is the fast per-node mirror used when the remote store
// is unreachable.
type LocalCatalogStore interface {
	Load(ctx context.Context) ([]models.Product, error)
	Save(ctx context.Context, products []models.Product) error
}

// nextSnapshot applies the last-writer-wins rule shared by every remote
// store: incoming writes older than the stored one are refused and accepted
// writes bump the version.
func nextSnapshot(current *models.CatalogSnapshot, incoming models.CatalogSnapshot, now time.Time) (models.CatalogSnapshot, error) {
	updatedAt := incoming.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}
	updatedAt = updatedAt.UTC()

	version := int64(1)
	if current != nil {
		if updatedAt.Before(current.UpdatedAt) {
			return models.CatalogSnapshot{}, ErrStaleSnapshot
		}
		version = current.Version + 1
	}

	products := incoming.Products
	if products == nil {
		products = []models.Product{}
	}

	return models.CatalogSnapshot{
		Products:  products,
		Version:   version,
		UpdatedAt: updatedAt,
	}, nil
}
