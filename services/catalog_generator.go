package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

// DefaultMinProductsPerCategory is how many active items each known
// subcategory is padded up to.
const DefaultMinProductsPerCategory = 5

var (
	defaultSizes  = []string{"S", "M", "L", "XL"}
	defaultColors = []string{"Black", "White", "Navy"}

	// seedTime stamps seed and generated products so reloads are stable.
	seedTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
)

var categoryBasePrices = map[string]float64{
	"shirts":    1299,
	"t-shirts":  599,
	"jeans":     1899,
	"trousers":  1499,
	"jackets":   2999,
	"dresses":   2199,
	"tops":      899,
	"kurtis":    1199,
	"sarees":    3499,
	"rompers":   699,
	"frocks":    899,
	"dungarees": 1099,
}

var categoryLabels = map[string]string{
	"shirts":    "Shirt",
	"t-shirts":  "T-Shirt",
	"jeans":     "Jeans",
	"trousers":  "Trousers",
	"jackets":   "Jacket",
	"dresses":   "Dress",
	"tops":      "Top",
	"kurtis":    "Kurti",
	"sarees":    "Saree",
	"rompers":   "Romper",
	"frocks":    "Frock",
	"dungarees": "Dungarees",
}

// HasCompletenessMarker reports whether the catalog holds at least one men's
// t-shirt. Catalogs persisted before padding existed never do.
func HasCompletenessMarker(products []models.Product) bool {
	for _, p := range products {
		if strings.EqualFold(p.Category, "t-shirts") && p.MainCategory == models.MensWear {
			return true
		}
	}
	return false
}

// EnsureMinimumProductsPerCategory pads every known subcategory up to min
// active items with placeholder products (ids gen-<category>-<index>). An id
// that already exists is never regenerated, so admin edits to generated
// products survive reloads and repeated calls add nothing new.
func EnsureMinimumProductsPerCategory(products []models.Product, min int) []models.Product {
	if min <= 0 {
		min = DefaultMinProductsPerCategory
	}

	out := models.CloneProducts(products)
	taken := make(map[string]bool, len(out))
	for _, p := range out {
		taken[p.ID] = true
	}

	for _, cat := range KnownCategories {
		count := countActiveInCategory(out, cat)
		for index := 0; count < min; index++ {
			id := generatedID(cat, index)
			if taken[id] {
				continue
			}
			out = append(out, generatePlaceholder(cat, index))
			taken[id] = true
			count++
		}
	}

	if !HasCompletenessMarker(out) {
		index := 0
		for taken[generatedID("t-shirts", index)] {
			index += 2
		}
		out = append(out, generatePlaceholder("t-shirts", index))
	}

	return out
}

func countActiveInCategory(products []models.Product, category string) int {
	count := 0
	for _, p := range products {
		if p.IsActive && strings.EqualFold(p.Category, category) {
			count++
		}
	}
	return count
}

func generatedID(category string, index int) string {
	return fmt.Sprintf("gen-%s-%d", category, index)
}

// generatedDepartment picks the department of a placeholder. jeans alternate
// mens/womens and t-shirts alternate mens/kids by index parity.
func generatedDepartment(category string, index int) (dept, gender string) {
	switch category {
	case "jeans":
		if index%2 == 0 {
			return models.MensWear, models.GenderMen
		}
		return models.WomensWear, models.GenderWomen
	case "t-shirts":
		if index%2 == 0 {
			return models.MensWear, models.GenderMen
		}
		return models.KidsWear, models.GenderKids
	}

	dept = categoryDepartments[category]
	switch dept {
	case models.WomensWear:
		return dept, models.GenderWomen
	case models.KidsWear:
		return dept, models.GenderKids
	}
	return models.MensWear, models.GenderMen
}

func generatePlaceholder(category string, index int) models.Product {
	dept, gender := generatedDepartment(category, index)

	prefix := "Men's"
	sizes := defaultSizes
	switch dept {
	case models.WomensWear:
		prefix = "Women's"
	case models.KidsWear:
		prefix = "Kids"
		sizes = []string{"2-3Y", "4-5Y", "6-7Y"}
	}
	if category == "jeans" || category == "trousers" {
		sizes = []string{"28", "30", "32", "34"}
	}

	return models.Product{
		ID:                generatedID(category, index),
		Name:              fmt.Sprintf("%s Essential %s %d", prefix, categoryLabels[category], index+1),
		Description:       fmt.Sprintf("Everyday %s from the Dresscollections essentials line.", strings.ToLower(categoryLabels[category])),
		Brand:             "Dresscollections",
		SKU:               strings.ToUpper(fmt.Sprintf("GEN-%s-%03d", category, index)),
		Price:             categoryBasePrices[category] + float64(index*100),
		IsActive:          true,
		Category:          category,
		MainCategory:      dept,
		Gender:            gender,
		Sizes:             append([]string(nil), sizes...),
		Colors:            models.ColorsFromNames(defaultColors...),
		Stock:             25,
		LowStockThreshold: 5,
		CreatedAt:         seedTime,
		UpdatedAt:         seedTime,
	}
}

// SeedProducts returns the hardcoded starter catalog. It deliberately has no
// men's t-shirt; the padding generator is expected to supply one.
func SeedProducts() []models.Product {
	seed := []struct {
		name, brand, category, gender string
		price                         float64
		original                      float64
		sizes                         []string
		colors                        []string
		featured                      bool
		rating                        float64
	}{
		{"Classic Oxford Shirt", "Peter England", "shirts", "men", 1499, 0, []string{"S", "M", "L", "XL"}, []string{"White", "Light Blue"}, true, 4.4},
		{"Men's Slim Fit Jeans", "Levi's", "jeans", "", 2499, 2999, []string{"30", "32", "34", "36"}, []string{"Indigo", "Black"}, true, 4.5},
		{"Women's High-Rise Skinny Jeans", "Only", "jeans", "", 2199, 0, []string{"26", "28", "30", "32"}, []string{"Mid Blue"}, false, 4.2},
		{"Tailored Chino Trousers", "Allen Solly", "trousers", "men", 1799, 0, []string{"30", "32", "34"}, []string{"Khaki", "Olive"}, false, 4.0},
		{"Quilted Bomber Jacket", "Roadster", "jackets", "men", 3499, 4299, []string{"M", "L", "XL"}, []string{"Black", "Olive"}, true, 4.6},
		{"Floral Wrap Dress", "Vero Moda", "dresses", "women", 2699, 0, []string{"XS", "S", "M", "L"}, []string{"Red", "Navy"}, true, 4.7},
		{"Ruffled Crop Top", "Mango", "tops", "women", 1099, 0, []string{"XS", "S", "M"}, []string{"White", "Peach"}, false, 3.9},
		{"Elegant Cotton Kurti", "Biba", "kurtis", "women", 1299, 1599, []string{"S", "M", "L", "XL"}, []string{"Mustard", "Teal"}, true, 4.8},
		{"Banarasi Silk Saree", "Kalki", "sarees", "women", 5999, 0, []string{"Free Size"}, []string{"Maroon", "Gold"}, false, 4.9},
		{"Kids Dino Print T-Shirt", "Hopscotch", "t-shirts", "kids", 499, 0, []string{"2-3Y", "4-5Y", "6-7Y"}, []string{"Green", "Yellow"}, false, 4.3},
		{"Baby Cotton Romper", "Mothercare", "rompers", "kids", 799, 0, []string{"0-6M", "6-12M"}, []string{"Pink", "Sky Blue"}, false, 4.1},
		{"Girls Party Frock", "Cherry Crumble", "frocks", "girls", 1299, 1499, []string{"2-3Y", "4-5Y", "6-7Y"}, []string{"Lavender"}, true, 4.5},
		{"Boys Denim Dungarees", "UCB Kids", "dungarees", "boys", 1399, 0, []string{"2-3Y", "4-5Y"}, []string{"Denim Blue"}, false, 4.0},
	}

	products := make([]models.Product, 0, len(seed))
	for i, s := range seed {
		p := models.Product{
			ID:                fmt.Sprintf("seed-%03d", i+1),
			Name:              s.name,
			Description:       s.name + " from " + s.brand + ".",
			Brand:             s.brand,
			SKU:               fmt.Sprintf("DC-%s-%03d", strings.ToUpper(s.category), i+1),
			Price:             s.price,
			IsActive:          true,
			IsFeatured:        s.featured,
			Category:          s.category,
			Gender:            s.gender,
			Sizes:             s.sizes,
			Colors:            models.ColorsFromNames(s.colors...),
			Stock:             40,
			LowStockThreshold: 10,
			Rating:            s.rating,
			CreatedAt:         seedTime,
			UpdatedAt:         seedTime,
		}
		if s.original > 0 {
			orig := s.original
			p.OriginalPrice = &orig
			p.IsOnSale = true
		}
		NormalizeProduct(&p)
		products = append(products, p)
	}
	return products
}
