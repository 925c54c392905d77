package models

import "time"

// CatalogSnapshot is the full-collection document replicated through the
// shared dev catalog store. Version and UpdatedAt make last-writer-wins
// explicit: a write older than the stored one is refused.
type CatalogSnapshot struct {
	Products  []Product `json:"products"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PutCatalogRequest struct {
	Products  []Product  `json:"products" binding:"required"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// CatalogStatus reports where the in-memory catalog came from.
type CatalogStatus struct {
	Source       string       `json:"source"`
	ProductCount int          `json:"productCount"`
	HydratedAt   time.Time    `json:"hydratedAt"`
	LastError    string       `json:"lastError,omitempty"`
	ActiveOffer  *ActiveOffer `json:"activeOffer,omitempty"`
}
