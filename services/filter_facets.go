package services

import (
	"sort"
	"strings"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

var departmentLabels = map[string]string{
	models.MensWear:   "Men's Wear",
	models.WomensWear: "Women's Wear",
	models.KidsWear:   "Kids Wear",
}

// BuildFilterFacets counts the sidebar filter values across active products.
func BuildFilterFacets(products []models.Product) models.FilterFacets {
	categoryCounts := map[string]int{}
	sizeCounts := map[string]int{}
	colorCounts := map[string]int{}
	colorLabels := map[string]string{}

	facets := models.FilterFacets{
		Categories:   []models.FilterOption{},
		Sizes:        []models.FilterOption{},
		Colors:       []models.FilterOption{},
		Availability: &models.AvailabilityData{},
	}

	first := true
	for _, p := range products {
		if !p.IsActive {
			continue
		}

		if p.Category != "" {
			categoryCounts[strings.ToLower(p.Category)]++
		}
		for _, s := range p.Sizes {
			sizeCounts[strings.ToUpper(strings.TrimSpace(s))]++
		}
		for _, c := range p.Colors {
			key := strings.ToLower(strings.TrimSpace(c.Name))
			if key == "" {
				continue
			}
			colorCounts[key]++
			if _, ok := colorLabels[key]; !ok {
				colorLabels[key] = c.Name
			}
		}

		if first || p.Price < facets.PriceRange.Min {
			facets.PriceRange.Min = p.Price
		}
		if first || p.Price > facets.PriceRange.Max {
			facets.PriceRange.Max = p.Price
		}
		first = false

		if p.Stock > 0 {
			facets.Availability.InStock++
		} else {
			facets.Availability.OutOfStock++
		}
	}

	for cat, n := range categoryCounts {
		label := categoryLabels[cat]
		if label == "" {
			label = cat
		}
		facets.Categories = append(facets.Categories, models.FilterOption{Label: label, Value: cat, Count: n})
	}
	for size, n := range sizeCounts {
		facets.Sizes = append(facets.Sizes, models.FilterOption{Label: size, Value: size, Count: n})
	}
	for key, n := range colorCounts {
		facets.Colors = append(facets.Colors, models.FilterOption{Label: colorLabels[key], Value: key, Count: n})
	}

	sortOptions(facets.Categories)
	sortOptions(facets.Sizes)
	sortOptions(facets.Colors)
	return facets
}

// sortOptions orders by count descending, then value.
func sortOptions(opts []models.FilterOption) {
	sort.Slice(opts, func(i, j int) bool {
		if opts[i].Count != opts[j].Count {
			return opts[i].Count > opts[j].Count
		}
		return opts[i].Value < opts[j].Value
	})
}

// BuildCategoryTree groups active products into departments and their
// subcategories. Every department is listed even when empty.
func BuildCategoryTree(products []models.Product) []models.StorefrontCategory {
	counts := map[string]map[string]int{}
	totals := map[string]int{}
	for _, p := range products {
		if !p.IsActive || p.MainCategory == "" {
			continue
		}
		if counts[p.MainCategory] == nil {
			counts[p.MainCategory] = map[string]int{}
		}
		counts[p.MainCategory][strings.ToLower(p.Category)]++
		totals[p.MainCategory]++
	}

	tree := make([]models.StorefrontCategory, 0, len(models.Departments))
	for _, dept := range models.Departments {
		parentID := dept
		node := models.StorefrontCategory{
			ID:            dept,
			Name:          departmentLabels[dept],
			ProductCount:  totals[dept],
			Subcategories: []models.StorefrontCategory{},
		}

		for _, cat := range KnownCategories {
			n, ok := counts[dept][cat]
			if !ok {
				continue
			}
			node.Subcategories = append(node.Subcategories, models.StorefrontCategory{
				ID:           cat,
				Name:         categoryLabels[cat],
				ParentID:     &parentID,
				ProductCount: n,
			})
			delete(counts[dept], cat)
		}

		// categories outside the known table, alphabetically
		extra := make([]string, 0, len(counts[dept]))
		for cat := range counts[dept] {
			extra = append(extra, cat)
		}
		sort.Strings(extra)
		for _, cat := range extra {
			name := cat
			if name == "" {
				name = "Other"
			}
			node.Subcategories = append(node.Subcategories, models.StorefrontCategory{
				ID:           cat,
				Name:         name,
				ParentID:     &parentID,
				ProductCount: counts[dept][cat],
			})
		}

		tree = append(tree, node)
	}
	return tree
}
