package services

import (
	"strings"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

// Subcategories known to the storefront, grouped by their default department.
// jeans and t-shirts are sold in two departments and get special routing.
var categoryDepartments = map[string]string{
	"shirts":    models.MensWear,
	"t-shirts":  models.MensWear,
	"jeans":     models.MensWear,
	"trousers":  models.MensWear,
	"jackets":   models.MensWear,
	"dresses":   models.WomensWear,
	"tops":      models.WomensWear,
	"kurtis":    models.WomensWear,
	"sarees":    models.WomensWear,
	"rompers":   models.KidsWear,
	"frocks":    models.KidsWear,
	"dungarees": models.KidsWear,
}

// KnownCategories is the ordered list of subcategories the padding generator
// keeps stocked.
var KnownCategories = []string{
	"shirts", "t-shirts", "jeans", "trousers", "jackets",
	"dresses", "tops", "kurtis", "sarees",
	"rompers", "frocks", "dungarees",
}

// Classification is the canonical department and gender of a product.
type Classification struct {
	MainCategory string `json:"mainCategory"`
	Gender       string `json:"gender"`
}

// Normalize resolves a product's department and gender. The name is only
// consulted when no gender was given. It never fails and applying it to its
// own output changes nothing.
func Normalize(p models.Product) Classification {
	gender := CanonicalGender(p.Gender)
	if strings.TrimSpace(p.Gender) == "" {
		gender = InferGender(p.Name)
	}

	main := strings.ToLower(strings.TrimSpace(p.MainCategory))
	if !models.IsDepartment(main) {
		main = DeriveMainCategory(p.Category, gender)
	}

	return Classification{MainCategory: main, Gender: gender}
}

// NormalizeProduct writes the classification back onto the product. A gender
// that cannot be classified (e.g. "unisex") is left as the caller sent it.
func NormalizeProduct(p *models.Product) {
	cls := Normalize(*p)
	p.MainCategory = cls.MainCategory
	if cls.Gender != "" {
		p.Gender = cls.Gender
	}
}

// NormalizeAll normalizes every product in place.
func NormalizeAll(products []models.Product) {
	for i := range products {
		NormalizeProduct(&products[i])
	}
}

// CanonicalGender maps free-form gender values to men, women or kids.
// Anything else (including unisex) is blank.
func CanonicalGender(g string) string {
	switch strings.ToLower(strings.TrimSpace(g)) {
	case "men", "man", "mens", "men's", "male", "m":
		return models.GenderMen
	case "women", "woman", "womens", "women's", "female", "f", "lady", "ladies":
		return models.GenderWomen
	case "kids", "kid", "children", "child", "boys", "girls", "boy", "girl":
		return models.GenderKids
	}
	return ""
}

// InferGender guesses the gender from keywords in a product name. Women's
// keywords are checked before "men" because "women" contains it.
func InferGender(name string) string {
	n := strings.ToLower(name)
	switch {
	case containsAny(n, "women", "lady", "ladies"):
		return models.GenderWomen
	case containsAny(n, "kid", "boys", "girls"):
		return models.GenderKids
	case strings.Contains(n, "men"):
		return models.GenderMen
	}
	return ""
}

// DeriveMainCategory looks the category up in the department table.
func DeriveMainCategory(category, gender string) string {
	cat := strings.ToLower(strings.TrimSpace(category))

	switch cat {
	case "jeans":
		if gender == models.GenderWomen {
			return models.WomensWear
		}
		return models.MensWear
	case "t-shirts":
		if gender == models.GenderKids {
			return models.KidsWear
		}
		return models.MensWear
	}

	if dept, ok := categoryDepartments[cat]; ok {
		return dept
	}
	return departmentForGender(gender)
}

func departmentForGender(gender string) string {
	switch gender {
	case models.GenderMen:
		return models.MensWear
	case models.GenderWomen:
		return models.WomensWear
	case models.GenderKids:
		return models.KidsWear
	}
	return ""
}

// LooksLikeKids reports whether a product's gender or name points at kids.
func LooksLikeKids(p models.Product) bool {
	return CanonicalGender(p.Gender) == models.GenderKids || InferGender(p.Name) == models.GenderKids
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
