package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

func TestBuildFilterFacets(t *testing.T) {
	products := []models.Product{
		{Category: "jeans", Sizes: []string{"30", "32"}, Colors: models.ColorsFromNames("Black"), Price: 1999, Stock: 4, IsActive: true},
		{Category: "Jeans", Sizes: []string{"32"}, Colors: models.ColorsFromNames("black", "Blue"), Price: 999, Stock: 0, IsActive: true},
		{Category: "tops", Sizes: []string{"m"}, Price: 499, Stock: 1, IsActive: true},
		{Category: "sarees", Price: 9999, IsActive: false},
	}

	facets := BuildFilterFacets(products)

	assert.Equal(t, []models.FilterOption{
		{Label: "Jeans", Value: "jeans", Count: 2},
		{Label: "Top", Value: "tops", Count: 1},
	}, facets.Categories)
	assert.Equal(t, "32", facets.Sizes[0].Value)
	assert.Equal(t, 2, facets.Sizes[0].Count)
	assert.Len(t, facets.Sizes, 3)

	require.Len(t, facets.Colors, 2)
	assert.Equal(t, models.FilterOption{Label: "Black", Value: "black", Count: 2}, facets.Colors[0])

	assert.Equal(t, models.PriceRange{Min: 499, Max: 1999}, facets.PriceRange)
	assert.Equal(t, &models.AvailabilityData{InStock: 2, OutOfStock: 1}, facets.Availability)
}

func TestBuildFilterFacetsEmpty(t *testing.T) {
	facets := BuildFilterFacets(nil)
	assert.NotNil(t, facets.Categories)
	assert.Equal(t, models.PriceRange{}, facets.PriceRange)
}

func TestBuildCategoryTree(t *testing.T) {
	products := []models.Product{
		{Category: "kurtis", MainCategory: models.WomensWear, IsActive: true},
		{Category: "dresses", MainCategory: models.WomensWear, IsActive: true},
		{Category: "capes", MainCategory: models.WomensWear, IsActive: true},
		{Category: "shirts", MainCategory: models.MensWear, IsActive: false},
	}

	tree := BuildCategoryTree(products)
	require.Len(t, tree, 3)

	assert.Equal(t, models.MensWear, tree[0].ID)
	assert.Equal(t, 0, tree[0].ProductCount)
	assert.Empty(t, tree[0].Subcategories)

	womens := tree[1]
	assert.Equal(t, "Women's Wear", womens.Name)
	assert.Equal(t, 3, womens.ProductCount)
	require.Len(t, womens.Subcategories, 3)
	assert.Equal(t, "dresses", womens.Subcategories[0].ID)
	assert.Equal(t, "kurtis", womens.Subcategories[1].ID)
	assert.Equal(t, "capes", womens.Subcategories[2].ID)
	require.NotNil(t, womens.Subcategories[0].ParentID)
	assert.Equal(t, models.WomensWear, *womens.Subcategories[0].ParentID)
}
