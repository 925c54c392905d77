package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// ═══════════════════════════════════════════════════════════
// Departments & Genders
// ═══════════════════════════════════════════════════════════

const (
	MensWear   = "mens-wear"
	WomensWear = "womens-wear"
	KidsWear   = "kids-wear"
)

const (
	GenderMen   = "men"
	GenderWomen = "women"
	GenderKids  = "kids"
)

// Departments lists the top-level departments in display order.
var Departments = []string{MensWear, WomensWear, KidsWear}

// IsDepartment reports whether v is one of the three canonical departments.
func IsDepartment(v string) bool {
	switch v {
	case MensWear, WomensWear, KidsWear:
		return true
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Color variants (structured or bare string on the wire)
// ═══════════════════════════════════════════════════════════

type ColorOption struct {
	Name   string   `json:"name"`
	Hex    string   `json:"hex,omitempty"`
	Stock  *int     `json:"stock,omitempty"`
	Images []string `json:"images,omitempty"`
}

type ColorList []ColorOption

// UnmarshalJSON accepts either "Black" or {"name":"Black","hex":"#000"}.
func (c *ColorOption) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*c = ColorOption{Name: name}
		return nil
	}

	type plain ColorOption
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = ColorOption(v)
	return nil
}

// MarshalJSON writes bare colors back as strings so snapshots round-trip.
func (c ColorOption) MarshalJSON() ([]byte, error) {
	if c.Hex == "" && c.Stock == nil && len(c.Images) == 0 {
		return json.Marshal(c.Name)
	}
	type plain ColorOption
	return json.Marshal(plain(c))
}

// Names returns the color labels in order.
func (l ColorList) Names() []string {
	names := make([]string, 0, len(l))
	for _, c := range l {
		names = append(names, c.Name)
	}
	return names
}

// ColorsFromNames builds bare colors from labels.
func ColorsFromNames(names ...string) ColorList {
	list := make(ColorList, 0, len(names))
	for _, n := range names {
		list = append(list, ColorOption{Name: n})
	}
	return list
}

// ═══════════════════════════════════════════════════════════
// Main Product Model
// ═══════════════════════════════════════════════════════════

// Product is the catalog record shared by the storefront, the CMS and the
// dev catalog snapshot. JSON uses the storefront client's camelCase keys.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Brand       string `json:"brand"`
	SKU         string `json:"sku"`

	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	IsOnSale      bool     `json:"isOnSale"`
	IsFinalSale   bool     `json:"isFinalSale"`
	IsFeatured    bool     `json:"isFeatured"`
	IsActive      bool     `json:"isActive"`

	Category     string `json:"category"`
	MainCategory string `json:"mainCategory"`
	Gender       string `json:"gender"`

	Sizes  []string  `json:"sizes"`
	Colors ColorList `json:"colors"`
	Images []string  `json:"images,omitempty"`

	Stock             int `json:"stock"`
	LowStockThreshold int `json:"lowStockThreshold"`

	Rating     float64 `json:"rating"`
	Reviews    int     `json:"reviews"`
	TotalSales int     `json:"totalSales"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy so callers never alias catalog slices.
func (p Product) Clone() Product {
	out := p
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		out.OriginalPrice = &v
	}
	out.Sizes = append([]string(nil), p.Sizes...)
	out.Images = append([]string(nil), p.Images...)
	if p.Colors != nil {
		out.Colors = make(ColorList, len(p.Colors))
		for i, c := range p.Colors {
			cc := c
			if c.Stock != nil {
				s := *c.Stock
				cc.Stock = &s
			}
			cc.Images = append([]string(nil), c.Images...)
			out.Colors[i] = cc
		}
	}
	return out
}

// IsLowStock reports whether stock is at or under the threshold.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}

// HasSize reports case-insensitive membership in Sizes.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(size)) {
			return true
		}
	}
	return false
}

// CloneProducts deep-copies a slice of products.
func CloneProducts(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductInput struct {
	Name              string    `json:"name" binding:"required"`
	Description       string    `json:"description"`
	Brand             string    `json:"brand"`
	SKU               string    `json:"sku"`
	Price             float64   `json:"price" binding:"min=0"`
	OriginalPrice     *float64  `json:"originalPrice" binding:"omitempty,min=0"`
	IsOnSale          bool      `json:"isOnSale"`
	IsFinalSale       bool      `json:"isFinalSale"`
	IsFeatured        bool      `json:"isFeatured"`
	IsActive          *bool     `json:"isActive"`
	Category          string    `json:"category"`
	MainCategory      string    `json:"mainCategory"`
	Gender            string    `json:"gender"`
	Sizes             []string  `json:"sizes"`
	Colors            ColorList `json:"colors"`
	Images            []string  `json:"images"`
	Stock             int       `json:"stock" binding:"min=0"`
	LowStockThreshold int       `json:"lowStockThreshold" binding:"min=0"`
}

// ProductPatch carries a shallow partial update; nil fields are left alone.
type ProductPatch struct {
	Name              *string    `json:"name"`
	Description       *string    `json:"description"`
	Brand             *string    `json:"brand"`
	SKU               *string    `json:"sku"`
	Price             *float64   `json:"price" binding:"omitempty,min=0"`
	OriginalPrice     *float64   `json:"originalPrice" binding:"omitempty,min=0"`
	IsOnSale          *bool      `json:"isOnSale"`
	IsFinalSale       *bool      `json:"isFinalSale"`
	IsFeatured        *bool      `json:"isFeatured"`
	IsActive          *bool      `json:"isActive"`
	Category          *string    `json:"category"`
	MainCategory      *string    `json:"mainCategory"`
	Gender            *string    `json:"gender"`
	Sizes             *[]string  `json:"sizes"`
	Colors            *ColorList `json:"colors"`
	Images            *[]string  `json:"images"`
	Stock             *int       `json:"stock" binding:"omitempty,min=0"`
	LowStockThreshold *int       `json:"lowStockThreshold" binding:"omitempty,min=0"`
}

// IsEmpty reports whether the patch would change nothing.
func (p ProductPatch) IsEmpty() bool {
	return p == ProductPatch{}
}

type UpdateStockRequest struct {
	Stock             int  `json:"stock" binding:"min=0"`
	LowStockThreshold *int `json:"lowStockThreshold" binding:"omitempty,min=0"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type ProductStats struct {
	TotalProducts    int            `json:"total_products"`
	ActiveProducts   int            `json:"active_products"`
	InactiveProducts int            `json:"inactive_products"`
	OnSaleProducts   int            `json:"on_sale_products"`
	FeaturedProducts int            `json:"featured_products"`
	LowStockProducts int            `json:"low_stock_products"`
	OutOfStock       int            `json:"out_of_stock"`
	TotalInventory   int            `json:"total_inventory"`
	AveragePrice     float64        `json:"average_price"`
	ByDepartment     map[string]int `json:"by_department"`
}
