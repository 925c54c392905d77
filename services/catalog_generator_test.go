package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

func TestSeedHasNoMensTShirt(t *testing.T) {
	assert.False(t, HasCompletenessMarker(SeedProducts()))
}

func TestEnsureMinimumProductsPerCategory(t *testing.T) {
	padded := EnsureMinimumProductsPerCategory(SeedProducts(), 5)

	t.Run("every known category reaches the minimum", func(t *testing.T) {
		for _, cat := range KnownCategories {
			assert.GreaterOrEqual(t, countActiveInCategory(padded, cat), 5, cat)
		}
	})

	t.Run("adds a mens t-shirt", func(t *testing.T) {
		assert.True(t, HasCompletenessMarker(padded))
	})

	t.Run("ids are unique across repeated runs", func(t *testing.T) {
		again := EnsureMinimumProductsPerCategory(padded, 5)
		assert.Len(t, again, len(padded))

		seen := map[string]bool{}
		for _, p := range again {
			require.False(t, seen[p.ID], "duplicate id %s", p.ID)
			seen[p.ID] = true
		}
	})

	t.Run("generated products are normalized", func(t *testing.T) {
		for _, p := range padded {
			assert.True(t, models.IsDepartment(p.MainCategory), p.ID)
		}
	})
}

func TestEnsureMinimumKeepsEditedGeneratedProducts(t *testing.T) {
	edited := generatePlaceholder("shirts", 0)
	edited.Name = "Renamed by admin"
	edited.IsActive = false

	padded := EnsureMinimumProductsPerCategory([]models.Product{edited}, 3)

	count := 0
	for _, p := range padded {
		if p.ID == "gen-shirts-0" {
			count++
			assert.Equal(t, "Renamed by admin", p.Name)
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 3, countActiveInCategory(padded, "shirts"))
}

func TestEnsureMinimumForcesMensTShirt(t *testing.T) {
	var kidsOnly []models.Product
	for i := 1; i < 10; i += 2 {
		kidsOnly = append(kidsOnly, generatePlaceholder("t-shirts", i))
	}
	require.False(t, HasCompletenessMarker(kidsOnly))

	padded := EnsureMinimumProductsPerCategory(kidsOnly, 5)
	assert.True(t, HasCompletenessMarker(padded))
}

func TestGeneratedDepartmentAlternates(t *testing.T) {
	dept, gender := generatedDepartment("jeans", 1)
	assert.Equal(t, models.WomensWear, dept)
	assert.Equal(t, models.GenderWomen, gender)

	dept, _ = generatedDepartment("t-shirts", 2)
	assert.Equal(t, models.MensWear, dept)

	dept, _ = generatedDepartment("t-shirts", 3)
	assert.Equal(t, models.KidsWear, dept)
}
