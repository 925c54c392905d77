package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	catalog_cache "github.com/developer2iverto/Dresscollections-sub000/cache"
	"github.com/developer2iverto/Dresscollections-sub000/models"
)

var ErrCatalogUnavailable = errors.New("catalog sources unavailable; serving the seed catalog")

// Where the in-memory catalog was last loaded from.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
	SourceSeed   = "seed"
)

const defaultLowStockThreshold = 10

// CatalogService owns the product collection. Reads hand out copies; every
// mutation is written back through the persistence bridge.
type CatalogService struct {
	mu         sync.RWMutex
	products   []models.Product
	bridge     *PersistenceBridge
	promotions *PromotionEngine
	minPerCat  int
	status     models.CatalogStatus

	now   func() time.Time
	newID func() string
}

func NewCatalogService(bridge *PersistenceBridge, minPerCategory int) *CatalogService {
	if bridge == nil {
		bridge = NewPersistenceBridge(nil, nil, 0)
	}
	if minPerCategory <= 0 {
		minPerCategory = DefaultMinProductsPerCategory
	}
	return &CatalogService{
		products:   []models.Product{},
		bridge:     bridge,
		promotions: NewPromotionEngine(),
		minPerCat:  minPerCategory,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      func() string { return uuid.Must(uuid.NewV7()).String() },
	}
}

// ════════════════════════════════════════════════════════════
// Hydration
// ════════════════════════════════════════════════════════════

// Hydrate loads the catalog: the remote store when it has products, else the
// local mirror when it looks complete, else the padded seed list. The seed is
// always adopted; ErrCatalogUnavailable is returned when both stores failed.
func (s *CatalogService) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, remoteErr := s.bridge.LoadRemote(ctx)
	if remoteErr != nil {
		log.Printf("[catalog] ⚠️ remote hydration failed: %v", remoteErr)
	} else if len(snap.Products) > 0 {
		products := models.CloneProducts(snap.Products)
		NormalizeAll(products)
		s.adopt(products, SourceRemote, "")
		if err := s.bridge.SaveLocal(ctx, products); err != nil {
			log.Printf("[catalog] ⚠️ failed to mirror remote catalog locally: %v", err)
		}
		log.Printf("[catalog] ✅ hydrated %d products from remote (v%d)", len(products), snap.Version)
		return nil
	}

	local, localErr := s.bridge.LoadLocal(ctx)
	if localErr != nil {
		log.Printf("[catalog] ⚠️ local hydration failed: %v", localErr)
	} else if len(local) > 0 && HasCompletenessMarker(local) {
		products := models.CloneProducts(local)
		NormalizeAll(products)
		s.adopt(products, SourceLocal, "")
		log.Printf("[catalog] ✅ hydrated %d products from local mirror", len(products))
		return nil
	}

	products := EnsureMinimumProductsPerCategory(SeedProducts(), s.minPerCat)

	var hydrateErr error
	lastError := ""
	if remoteErr != nil && localErr != nil {
		hydrateErr = ErrCatalogUnavailable
		lastError = ErrCatalogUnavailable.Error()
	}
	s.adopt(products, SourceSeed, lastError)
	s.persistLocked(ctx)

	log.WithFields(log.Fields{
		"products": len(products),
		"degraded": hydrateErr != nil,
	}).Info("[catalog] seeded catalog")
	return hydrateErr
}

func (s *CatalogService) adopt(products []models.Product, source, lastError string) {
	s.products = products
	s.status = models.CatalogStatus{
		Source:     source,
		HydratedAt: s.now(),
		LastError:  lastError,
	}
	catalog_cache.Invalidate()
}

// persistLocked overwrites the local mirror and pushes to the remote store.
// Callers hold s.mu.
func (s *CatalogService) persistLocked(ctx context.Context) {
	if err := s.bridge.SaveLocal(ctx, s.products); err != nil {
		log.Printf("[catalog] ⚠️ local write-back failed: %v", err)
	}
	s.bridge.PushRemote(s.products)
	catalog_cache.Invalidate()
}

// Flush waits for background remote pushes to finish.
func (s *CatalogService) Flush() {
	s.bridge.Flush()
}

// Status reports the hydration source and the current catalog size.
func (s *CatalogService) Status() models.CatalogStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := s.status
	status.ProductCount = len(s.products)
	status.ActiveOffer = s.promotions.Active()
	return status
}

// RemoteSnapshot returns the shared snapshot, or the in-memory catalog at
// version 0 when nothing has been shared yet.
func (s *CatalogService) RemoteSnapshot(ctx context.Context) (*models.CatalogSnapshot, error) {
	snap, err := s.bridge.LoadRemote(ctx)
	if err != nil {
		return nil, err
	}
	if snap.Version == 0 && len(snap.Products) == 0 {
		return &models.CatalogSnapshot{Products: s.List()}, nil
	}
	return snap, nil
}

// ReplaceAll writes a full snapshot to the remote store and adopts it. The
// remote write is synchronous so stale snapshots are reported to the caller.
func (s *CatalogService) ReplaceAll(ctx context.Context, products []models.Product, updatedAt *time.Time) (*models.CatalogSnapshot, error) {
	incoming := models.CloneProducts(products)
	NormalizeAll(incoming)

	snap := models.CatalogSnapshot{Products: incoming}
	if updatedAt != nil {
		snap.UpdatedAt = updatedAt.UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.bridge.Replace(ctx, snap)
	if err != nil {
		return nil, err
	}

	if previous := s.promotions.Active(); previous != nil {
		log.Printf("[catalog] replaced catalog drops active offer %q", previous.Offer.Title)
	}
	s.promotions.Discard()
	s.adopt(incoming, SourceRemote, "")
	if err := s.bridge.SaveLocal(ctx, incoming); err != nil {
		log.Printf("[catalog] ⚠️ failed to mirror replaced catalog locally: %v", err)
	}
	return saved, nil
}

// ════════════════════════════════════════════════════════════
// Reads
// ════════════════════════════════════════════════════════════

// List returns a copy of every product in catalog order.
func (s *CatalogService) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneProducts(s.products)
}

func (s *CatalogService) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.products[i].Clone(), true
	}
	return models.Product{}, false
}

func (s *CatalogService) ByCategory(category string) []models.Product {
	return s.filterActive(func(p models.Product) bool { return strings.EqualFold(p.Category, category) })
}

func (s *CatalogService) ByMainCategory(mainCategory string) []models.Product {
	return s.filterActive(func(p models.Product) bool { return p.MainCategory == mainCategory })
}

func (s *CatalogService) Featured() []models.Product {
	return s.filterActive(func(p models.Product) bool { return p.IsFeatured })
}

func (s *CatalogService) OnSale() []models.Product {
	return s.filterActive(func(p models.Product) bool { return p.IsOnSale })
}

func (s *CatalogService) Search(term string) []models.Product {
	return s.filterActive(func(p models.Product) bool { return MatchesSearch(p, term) })
}

// LowStock lists every product, active or not, at or under its threshold.
func (s *CatalogService) LowStock() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Product{}
	for _, p := range s.products {
		if p.IsLowStock() {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (s *CatalogService) Stats() models.ProductStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.ProductStats{
		TotalProducts: len(s.products),
		ByDepartment:  make(map[string]int, len(models.Departments)),
	}
	for _, dept := range models.Departments {
		stats.ByDepartment[dept] = 0
	}

	total := decimal.Zero
	for _, p := range s.products {
		if p.IsActive {
			stats.ActiveProducts++
		} else {
			stats.InactiveProducts++
		}
		if p.IsOnSale {
			stats.OnSaleProducts++
		}
		if p.IsFeatured {
			stats.FeaturedProducts++
		}
		if p.IsLowStock() {
			stats.LowStockProducts++
		}
		if p.Stock == 0 {
			stats.OutOfStock++
		}
		stats.TotalInventory += p.Stock
		if p.MainCategory != "" {
			stats.ByDepartment[p.MainCategory]++
		}
		total = total.Add(decimal.NewFromFloat(p.Price))
	}

	if len(s.products) > 0 {
		stats.AveragePrice = total.Div(decimal.NewFromInt(int64(len(s.products)))).Round(2).InexactFloat64()
	}
	return stats
}

func (s *CatalogService) filterActive(pred func(models.Product) bool) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Product{}
	for _, p := range s.products {
		if p.IsActive && pred(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (s *CatalogService) indexOf(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

// ════════════════════════════════════════════════════════════
// Mutations
// ════════════════════════════════════════════════════════════

// Add creates a product with a fresh id and zeroed counters.
func (s *CatalogService) Add(ctx context.Context, input models.ProductInput) models.Product {
	now := s.now()

	p := models.Product{
		ID:                s.newID(),
		Name:              strings.TrimSpace(input.Name),
		Description:       input.Description,
		Brand:             input.Brand,
		SKU:               input.SKU,
		Price:             input.Price,
		OriginalPrice:     copyFloat(input.OriginalPrice),
		IsOnSale:          input.IsOnSale,
		IsFinalSale:       input.IsFinalSale,
		IsFeatured:        input.IsFeatured,
		IsActive:          input.IsActive == nil || *input.IsActive,
		Category:          strings.ToLower(strings.TrimSpace(input.Category)),
		MainCategory:      input.MainCategory,
		Gender:            input.Gender,
		Sizes:             append([]string(nil), input.Sizes...),
		Colors:            input.Colors,
		Images:            append([]string(nil), input.Images...),
		Stock:             input.Stock,
		LowStockThreshold: input.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if len(p.Sizes) == 0 {
		p.Sizes = append([]string(nil), defaultSizes...)
	}
	if len(p.Colors) == 0 {
		p.Colors = models.ColorsFromNames(defaultColors...)
	}
	if p.LowStockThreshold == 0 {
		p.LowStockThreshold = defaultLowStockThreshold
	}
	NormalizeProduct(&p)
	p = p.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, p)
	s.persistLocked(ctx)

	log.Printf("[catalog] ➕ added product %s (%s/%s)", p.ID, p.MainCategory, p.Category)
	return p.Clone()
}

// Update merges the non-nil patch fields into the product. It is a no-op
// returning false for unknown ids.
func (s *CatalogService) Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Product{}, false
	}

	p := s.products[i].Clone()
	applyPatch(&p, patch)
	p.UpdatedAt = s.now()
	NormalizeProduct(&p)

	s.products[i] = p
	s.persistLocked(ctx)
	return p.Clone(), true
}

// UpdateStock sets the stock level and, optionally, the low-stock threshold.
func (s *CatalogService) UpdateStock(ctx context.Context, id string, req models.UpdateStockRequest) (models.Product, bool) {
	return s.Update(ctx, id, models.ProductPatch{
		Stock:             &req.Stock,
		LowStockThreshold: req.LowStockThreshold,
	})
}

// Remove drops the product from the collection. Unknown ids are ignored.
func (s *CatalogService) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.products = append(s.products[:i:i], s.products[i+1:]...)
	s.promotions.Forget(id)
	s.persistLocked(ctx)
	return true
}

func applyPatch(p *models.Product, patch models.ProductPatch) {
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.OriginalPrice != nil {
		p.OriginalPrice = copyFloat(patch.OriginalPrice)
	}
	if patch.IsOnSale != nil {
		p.IsOnSale = *patch.IsOnSale
	}
	if patch.IsFinalSale != nil {
		p.IsFinalSale = *patch.IsFinalSale
	}
	if patch.IsFeatured != nil {
		p.IsFeatured = *patch.IsFeatured
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.Category != nil {
		p.Category = strings.ToLower(strings.TrimSpace(*patch.Category))
	}

	// a new category or gender without an explicit department is re-derived
	if patch.MainCategory != nil {
		p.MainCategory = *patch.MainCategory
	} else if patch.Category != nil || patch.Gender != nil {
		p.MainCategory = ""
	}

	if patch.Sizes != nil {
		p.Sizes = append([]string(nil), (*patch.Sizes)...)
	}
	if patch.Colors != nil {
		p.Colors = *patch.Colors
	}
	if patch.Images != nil {
		p.Images = append([]string(nil), (*patch.Images)...)
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.LowStockThreshold != nil {
		p.LowStockThreshold = *patch.LowStockThreshold
	}
}

// ════════════════════════════════════════════════════════════
// Promotions
// ════════════════════════════════════════════════════════════

// ApplyOffer discounts the whole catalog. ErrPromotionActive is returned
// while another offer is running.
func (s *CatalogService) ApplyOffer(ctx context.Context, offer models.Offer) (*models.ActiveOffer, error) {
	if offer.ID == "" {
		offer.ID = s.newID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.promotions.ApplyToAll(s.products, offer); err != nil {
		return nil, err
	}
	now := s.now()
	for i := range s.products {
		s.products[i].UpdatedAt = now
	}
	s.persistLocked(ctx)

	log.Printf("[offers] 🏷️ applied %q (%s %.2f) to %d products", offer.Title, offer.DiscountType, offer.DiscountValue, len(s.products))
	return s.promotions.Active(), nil
}

// ResetOffers restores pre-promotion prices and returns the offer that was
// active, if any.
func (s *CatalogService) ResetOffers(ctx context.Context) *models.ActiveOffer {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.promotions.Active()
	s.promotions.ResetAll(s.products)
	now := s.now()
	for i := range s.products {
		s.products[i].UpdatedAt = now
	}
	s.persistLocked(ctx)

	log.Printf("[offers] ♻️ reset promotions on %d products", len(s.products))
	return previous
}

func (s *CatalogService) ActiveOffer() *models.ActiveOffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.promotions.Active()
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var catalogService *CatalogService

// InitCatalogService installs the process-wide catalog.
func InitCatalogService(svc *CatalogService) {
	catalogService = svc
}

// GetCatalogService returns the process-wide catalog, creating an empty
// unpersisted one if none was installed.
func GetCatalogService() *CatalogService {
	if catalogService == nil {
		catalogService = NewCatalogService(nil, 0)
	}
	return catalogService
}
