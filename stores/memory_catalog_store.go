package stores

import (
	"context"
	"sync"
	"time"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

// MemoryCatalogStore keeps the shared snapshot in process. It backs
// CATALOG_REMOTE=memory for local development.
type MemoryCatalogStore struct {
	mu       sync.Mutex
	snapshot *models.CatalogSnapshot
	now      func() time.Time
}

func NewMemoryCatalogStore() *MemoryCatalogStore {
	return &MemoryCatalogStore{now: time.Now}
}

func (s *MemoryCatalogStore) Load(ctx context.Context) (*models.CatalogSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot == nil {
		return nil, ErrSnapshotNotFound
	}
	snap := *s.snapshot
	snap.Products = models.CloneProducts(s.snapshot.Products)
	return &snap, nil
}

func (s *MemoryCatalogStore) Save(ctx context.Context, snapshot models.CatalogSnapshot) (*models.CatalogSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := nextSnapshot(s.snapshot, snapshot, s.now())
	if err != nil {
		return nil, err
	}
	next.Products = models.CloneProducts(next.Products)
	s.snapshot = &next

	out := next
	out.Products = models.CloneProducts(next.Products)
	return &out, nil
}

// MemoryLocalStore is an in-process LocalCatalogStore.
type MemoryLocalStore struct {
	mu       sync.Mutex
	products []models.Product
}

func NewMemoryLocalStore() *MemoryLocalStore {
	return &MemoryLocalStore{}
}

func (s *MemoryLocalStore) Load(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneProducts(s.products), nil
}

func (s *MemoryLocalStore) Save(ctx context.Context, products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = models.CloneProducts(products)
	return nil
}
