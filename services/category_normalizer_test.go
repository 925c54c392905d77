package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		product  models.Product
		wantMain string
		wantGen  string
	}{
		{"womens jeans inferred from name", models.Product{Name: "Women's High-Rise Skinny Jeans", Category: "jeans"}, models.WomensWear, models.GenderWomen},
		{"mens jeans inferred from name", models.Product{Name: "Men's Slim Fit Jeans", Category: "jeans"}, models.MensWear, models.GenderMen},
		{"jeans with no gender default to mens", models.Product{Name: "Straight Fit Denim", Category: "jeans"}, models.MensWear, ""},
		{"kids t-shirt", models.Product{Name: "Dino Tee", Category: "t-shirts", Gender: "kids"}, models.KidsWear, models.GenderKids},
		{"mens t-shirt", models.Product{Name: "Crew Neck Tee", Category: "t-shirts", Gender: "Male"}, models.MensWear, models.GenderMen},
		{"table lookup", models.Product{Name: "Silk Saree", Category: "Sarees"}, models.WomensWear, ""},
		{"unknown category falls back to gender", models.Product{Name: "Women's Scarf", Category: "scarves"}, models.WomensWear, models.GenderWomen},
		{"explicit department kept", models.Product{Name: "Oversized Shirt", Category: "shirts", MainCategory: "Womens-Wear"}, models.WomensWear, ""},
		{"invalid department re-derived", models.Product{Name: "Frock", Category: "frocks", MainCategory: "girls"}, models.KidsWear, ""},
		{"nothing to go on", models.Product{Name: "Mystery Item", Category: "misc"}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := Normalize(tt.product)
			assert.Equal(t, tt.wantMain, cls.MainCategory)
			assert.Equal(t, tt.wantGen, cls.Gender)
		})
	}
}

func TestNormalizeProductKeepsUnclassifiedGender(t *testing.T) {
	p := models.Product{Name: "Everyday Shirt", Category: "shirts", Gender: "unisex"}
	NormalizeProduct(&p)

	assert.Equal(t, models.MensWear, p.MainCategory)
	assert.Equal(t, "unisex", p.Gender)
}

func TestNormalizeProductIgnoresNameWhenGenderGiven(t *testing.T) {
	p := models.Product{Name: "Women's Relaxed Jeans", Category: "jeans", Gender: "unisex"}
	NormalizeProduct(&p)

	assert.Equal(t, models.MensWear, p.MainCategory)
	assert.Equal(t, "unisex", p.Gender)

	blank := models.Product{Name: "Women's Relaxed Jeans", Category: "jeans", Gender: "  "}
	NormalizeProduct(&blank)
	assert.Equal(t, models.WomensWear, blank.MainCategory)
	assert.Equal(t, models.GenderWomen, blank.Gender)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	catalog := EnsureMinimumProductsPerCategory(SeedProducts(), DefaultMinProductsPerCategory)
	catalog = append(catalog,
		models.Product{ID: "a", Name: "Ladies Denim", Category: "jeans", Gender: "F"},
		models.Product{ID: "b", Name: "Boys Tee", Category: "T-Shirts"},
		models.Product{ID: "c", Name: "Thing", Category: "misc", Gender: "unisex"},
	)

	for _, p := range catalog {
		once := p
		NormalizeProduct(&once)
		twice := once
		NormalizeProduct(&twice)

		assert.Equal(t, once.MainCategory, twice.MainCategory, p.ID)
		assert.Equal(t, once.Gender, twice.Gender, p.ID)
		if once.MainCategory != "" {
			assert.True(t, models.IsDepartment(once.MainCategory), p.ID)
		}
	}
}

func TestInferGender(t *testing.T) {
	assert.Equal(t, models.GenderWomen, InferGender("Women's Kurti"))
	assert.Equal(t, models.GenderMen, InferGender("MEN'S JACKET"))
	assert.Equal(t, models.GenderKids, InferGender("Girls Party Frock"))
	assert.Equal(t, "", InferGender("Classic Oxford Shirt"))
}
