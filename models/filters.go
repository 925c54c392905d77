package models

// Sort keys understood by the storefront listing.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortName      = "name"
)

// Size families for the sizeType sidebar filter.
const (
	SizeTypeAlpha   = "alpha"
	SizeTypeNumeric = "numeric"
	SizeTypeAge     = "age"
)

// PageContext is what the storefront URL says about the page being viewed:
// the search term, the department and the banner subcategory.
type PageContext struct {
	Search       string `form:"search" json:"search"`
	MainCategory string `form:"mainCategory" json:"mainCategory"`
	Category     string `form:"category" json:"category"`
}

// FilterSelection holds the sidebar filters. Every field is optional.
type FilterSelection struct {
	Category   string `form:"filterCategory" json:"category"`
	Size       string `form:"size" json:"size"`
	SizeType   string `form:"sizeType" json:"sizeType"`
	Color      string `form:"color" json:"color"`
	PriceRange string `form:"priceRange" json:"priceRange"`
}

// IsEmpty reports whether no sidebar filter is selected.
func (f FilterSelection) IsEmpty() bool {
	return f == FilterSelection{}
}

// FilterFacets lists the filter values available across the active catalog.
type FilterFacets struct {
	Categories   []FilterOption    `json:"categories"`
	Sizes        []FilterOption    `json:"sizes"`
	Colors       []FilterOption    `json:"colors"`
	PriceRange   PriceRange        `json:"price_range"`
	Availability *AvailabilityData `json:"availability"`
}

// FilterOption represents a single filter option
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRange represents min and max price
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}
