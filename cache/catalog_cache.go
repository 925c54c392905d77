package catalog_cache

import (
	"sync"
	"time"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

const TTL = 5 * time.Minute

// ── Storefront filter facets ─────────────────────────────────────────────────

type facetsEntry struct {
	facets    models.FilterFacets
	fetchedAt time.Time
}

var (
	facetsMu    sync.RWMutex
	facetsCache *facetsEntry
)

func GetFacets() (models.FilterFacets, bool) {
	facetsMu.RLock()
	defer facetsMu.RUnlock()
	if facetsCache != nil && time.Since(facetsCache.fetchedAt) < TTL {
		return facetsCache.facets, true
	}
	return models.FilterFacets{}, false
}

func SetFacets(facets models.FilterFacets) {
	facetsMu.Lock()
	defer facetsMu.Unlock()
	facetsCache = &facetsEntry{facets: facets, fetchedAt: time.Now()}
}

// ── Department tree with product counts ──────────────────────────────────────

type treeEntry struct {
	departments []models.StorefrontCategory
	fetchedAt   time.Time
}

var (
	treeMu    sync.RWMutex
	treeCache *treeEntry
)

func GetTree() ([]models.StorefrontCategory, bool) {
	treeMu.RLock()
	defer treeMu.RUnlock()
	if treeCache != nil && time.Since(treeCache.fetchedAt) < TTL {
		return treeCache.departments, true
	}
	return nil, false
}

func SetTree(departments []models.StorefrontCategory) {
	treeMu.Lock()
	defer treeMu.Unlock()
	treeCache = &treeEntry{departments: departments, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any catalog mutation) ─────────────────────

func Invalidate() {
	facetsMu.Lock()
	facetsCache = nil
	facetsMu.Unlock()

	treeMu.Lock()
	treeCache = nil
	treeMu.Unlock()
}
