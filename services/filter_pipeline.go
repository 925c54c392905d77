package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

// RenderCatalog narrows and orders the catalog for one storefront view. It
// is a pure function of its inputs and is re-run on every request.
//
// Steps, in order:
//  1. free-text search over name, brand, category and department
//  2. banner narrowing (subcategory + department), unless the sidebar picks a
//     different category, in which case only the department applies
//  3. sidebar predicates: category, size, size type, color, price range
//  4. department exclusion rules
//  5. sort
//  6. rescue fallbacks for the kids t-shirts and womens jeans pages
func RenderCatalog(catalog []models.Product, page models.PageContext, filters models.FilterSelection, sortKey string) []models.Product {
	dept := strings.ToLower(strings.TrimSpace(page.MainCategory))
	banner := strings.ToLower(strings.TrimSpace(page.Category))
	sidebarCat := strings.ToLower(strings.TrimSpace(filters.Category))

	result := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if p.IsActive {
			result = append(result, p)
		}
	}

	if term := strings.TrimSpace(page.Search); term != "" {
		result = keep(result, func(p models.Product) bool { return MatchesSearch(p, term) })
	}

	overridden := sidebarCat != "" && banner != "" && sidebarCat != banner
	if banner != "" && !overridden {
		result = keep(result, func(p models.Product) bool { return matchesCategory(p, banner, dept) })
	}
	if dept != "" {
		result = keep(result, func(p models.Product) bool { return inDepartment(p, dept) })
	}

	if sidebarCat != "" {
		result = keep(result, func(p models.Product) bool { return matchesCategory(p, sidebarCat, dept) })
	}
	if size := strings.TrimSpace(filters.Size); size != "" {
		result = keep(result, func(p models.Product) bool { return p.HasSize(size) })
	}
	if sizeType := strings.ToLower(strings.TrimSpace(filters.SizeType)); sizeType != "" {
		result = keep(result, func(p models.Product) bool { return hasSizeType(p, sizeType) })
	}
	if color := strings.ToLower(strings.TrimSpace(filters.Color)); color != "" {
		result = keep(result, func(p models.Product) bool { return hasColor(p, color) })
	}
	if min, max, ok := ParsePriceRange(filters.PriceRange); ok {
		result = keep(result, func(p models.Product) bool { return p.Price >= min && p.Price <= max })
	}

	result = keep(result, func(p models.Product) bool { return allowedInDepartment(p, dept) })

	if len(result) == 0 {
		result = rescue(catalog, dept, banner, sidebarCat)
	}

	SortProducts(result, sortKey)
	return result
}

// MatchesSearch is a case-insensitive substring match against name, brand,
// category or department.
func MatchesSearch(p models.Product, term string) bool {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), t) ||
		strings.Contains(strings.ToLower(p.Brand), t) ||
		strings.Contains(strings.ToLower(p.Category), t) ||
		strings.Contains(strings.ToLower(p.MainCategory), t)
}

// SortProducts orders products in place. featured and unknown keys keep
// catalog order.
func SortProducts(products []models.Product, sortKey string) {
	var less func(a, b models.Product) bool
	switch sortKey {
	case models.SortPriceLow:
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case models.SortPriceHigh:
		less = func(a, b models.Product) bool { return a.Price > b.Price }
	case models.SortRating:
		less = func(a, b models.Product) bool { return a.Rating > b.Rating }
	case models.SortName:
		less = func(a, b models.Product) bool { return a.Name < b.Name }
	default:
		return
	}
	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
}

// ParsePriceRange understands "min-max" and "min+". ok is false for an empty
// or malformed range.
func ParsePriceRange(r string) (min, max float64, ok bool) {
	r = strings.TrimSpace(r)
	if r == "" {
		return 0, 0, false
	}

	if strings.HasSuffix(r, "+") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(r, "+"), 64)
		if err != nil {
			return 0, 0, false
		}
		return v, maxPrice, true
	}

	lo, hi, found := strings.Cut(r, "-")
	if !found {
		return 0, 0, false
	}
	minV, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return 0, 0, false
	}
	maxV, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil || maxV < minV {
		return 0, 0, false
	}
	return minV, maxV, true
}

const maxPrice = 1e12

func keep(products []models.Product, pred func(models.Product) bool) []models.Product {
	out := products[:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func inDepartment(p models.Product, dept string) bool {
	return p.MainCategory == dept
}

func isJeansLike(p models.Product) bool {
	if strings.EqualFold(p.Category, "jeans") {
		return true
	}
	if strings.TrimSpace(p.Category) != "" {
		return false
	}
	name := strings.ToLower(p.Name)
	return strings.Contains(name, "jean") || strings.Contains(name, "denim")
}

// matchesCategory checks a product against a subcategory. jeans also match
// uncategorised products named like jeans; t-shirts only match the
// department page being viewed.
func matchesCategory(p models.Product, category, dept string) bool {
	switch category {
	case "jeans":
		return isJeansLike(p)
	case "t-shirts":
		if !strings.EqualFold(p.Category, "t-shirts") {
			return false
		}
		switch dept {
		case models.MensWear:
			return p.MainCategory == models.MensWear && !LooksLikeKids(p)
		case models.KidsWear:
			return p.MainCategory == models.KidsWear || LooksLikeKids(p)
		}
		return true
	}
	return strings.EqualFold(p.Category, category)
}

// allowedInDepartment applies the hardcoded department business rules.
func allowedInDepartment(p models.Product, dept string) bool {
	switch dept {
	case models.WomensWear:
		if strings.EqualFold(p.Category, "t-shirts") {
			return false
		}
		if isJeansLike(p) && CanonicalGender(p.Gender) == models.GenderMen {
			return false
		}
	case models.MensWear:
		if LooksLikeKids(p) {
			return false
		}
	}
	return true
}

// rescue re-runs a looser predicate over the whole catalog so the kids
// t-shirts and womens jeans pages are never empty.
func rescue(catalog []models.Product, dept, banner, sidebarCat string) []models.Product {
	wants := func(cat string) bool { return banner == cat || sidebarCat == cat }

	var pred func(models.Product) bool
	switch {
	case dept == models.KidsWear && wants("t-shirts"):
		pred = func(p models.Product) bool {
			return strings.EqualFold(p.Category, "t-shirts") &&
				(p.MainCategory == models.KidsWear || LooksLikeKids(p))
		}
	case dept == models.WomensWear && wants("jeans"):
		pred = func(p models.Product) bool {
			return isJeansLike(p) &&
				(p.MainCategory == models.WomensWear || CanonicalGender(p.Gender) == models.GenderWomen || InferGender(p.Name) == models.GenderWomen)
		}
	default:
		return []models.Product{}
	}

	out := make([]models.Product, 0)
	for _, p := range catalog {
		if p.IsActive && pred(p) {
			out = append(out, p)
		}
	}
	return out
}

var (
	alphaSizePattern   = regexp.MustCompile(`^(X{0,3}S|M|X{0,3}L|\d?XL|FREE SIZE)$`)
	numericSizePattern = regexp.MustCompile(`^\d{2,3}$`)
	ageSizePattern     = regexp.MustCompile(`^\d+(-\d+)?\s*(Y|M|YRS|YEARS|MONTHS)$`)
)

// SizeTypeOf classifies a size label as alpha, numeric or age.
func SizeTypeOf(size string) string {
	s := strings.ToUpper(strings.TrimSpace(size))
	switch {
	case ageSizePattern.MatchString(s):
		return models.SizeTypeAge
	case numericSizePattern.MatchString(s):
		return models.SizeTypeNumeric
	case alphaSizePattern.MatchString(s):
		return models.SizeTypeAlpha
	}
	return ""
}

func hasSizeType(p models.Product, sizeType string) bool {
	for _, s := range p.Sizes {
		if SizeTypeOf(s) == sizeType {
			return true
		}
	}
	return false
}

func hasColor(p models.Product, color string) bool {
	for _, c := range p.Colors {
		if strings.Contains(strings.ToLower(c.Name), color) {
			return true
		}
	}
	return false
}
