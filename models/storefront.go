// ════════════════════════════════════════════════════════════
// STOREFRONT MODELS
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

// StorefrontProductResponse is the thin card shown on listing pages.
type StorefrontProductResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Image         string   `json:"image"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	IsOnSale      bool     `json:"isOnSale"`
	IsFinalSale   bool     `json:"isFinalSale"`
	Rating        float64  `json:"rating"`
	Category      string   `json:"category"`
	MainCategory  string   `json:"mainCategory"`
	InStock       bool     `json:"inStock"`
}

// ToStorefrontResponse maps a catalog product to its listing card.
func (p Product) ToStorefrontResponse() StorefrontProductResponse {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return StorefrontProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Image:         image,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		IsOnSale:      p.IsOnSale,
		IsFinalSale:   p.IsFinalSale,
		Rating:        p.Rating,
		Category:      p.Category,
		MainCategory:  p.MainCategory,
		InStock:       p.Stock > 0,
	}
}

// StorefrontCategory represents a department or subcategory in the storefront
type StorefrontCategory struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	ParentID      *string              `json:"parent_id"`
	ProductCount  int                  `json:"product_count"`
	Subcategories []StorefrontCategory `json:"subcategories,omitempty"`
}
