package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

func pipelineCatalog() []models.Product {
	catalog := []models.Product{
		{ID: "w-tee", Name: "Women's Graphic Tee", Category: "t-shirts", MainCategory: models.WomensWear, Gender: "women", Price: 499, Sizes: []string{"S", "M"}, IsActive: true},
		{ID: "m-tee", Name: "Men's Crew Tee", Category: "t-shirts", Gender: "men", Price: 599, Sizes: []string{"M", "L"}, Colors: models.ColorsFromNames("Navy Blue"), Rating: 4.1, IsActive: true},
		{ID: "k-tee", Name: "Kids Dino Tee", Category: "t-shirts", Gender: "kids", Price: 399, Sizes: []string{"4-5Y"}, Rating: 4.7, IsActive: true},
		{ID: "kurti", Name: "Elegant Cotton Kurti", Brand: "Biba", Category: "kurtis", Price: 1299, Sizes: []string{"S", "M", "L"}, Colors: models.ColorsFromNames("Teal"), Rating: 4.8, IsActive: true},
		{ID: "m-jeans", Name: "Men's Slim Jeans", Category: "jeans", Price: 2499, Sizes: []string{"30", "32"}, IsActive: true},
		{ID: "w-jeans", Name: "Women's Skinny Jeans", Category: "jeans", Price: 2199, Sizes: []string{"28"}, IsActive: true},
		{ID: "hidden", Name: "Hidden Kurti", Category: "kurtis", Price: 999, IsActive: false},
	}
	NormalizeAll(catalog)
	return catalog
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestRenderCatalogWomensExcludesTShirts(t *testing.T) {
	catalog := pipelineCatalog()
	got := RenderCatalog(catalog, models.PageContext{MainCategory: models.WomensWear}, models.FilterSelection{}, "")

	require.NotEmpty(t, got)
	for _, p := range got {
		assert.NotEqual(t, "t-shirts", p.Category, p.ID)
	}
	assert.ElementsMatch(t, []string{"kurti", "w-jeans"}, ids(got))
}

func TestRenderCatalogSearch(t *testing.T) {
	catalog := pipelineCatalog()

	got := RenderCatalog(catalog, models.PageContext{Search: "kurti"}, models.FilterSelection{}, "")
	assert.Equal(t, []string{"kurti"}, ids(got))

	got = RenderCatalog(catalog, models.PageContext{Search: "zzz-nonexistent"}, models.FilterSelection{}, "")
	assert.Empty(t, got)
}

func TestRenderCatalogTShirtsByDepartment(t *testing.T) {
	catalog := pipelineCatalog()

	mens := RenderCatalog(catalog, models.PageContext{MainCategory: models.MensWear, Category: "t-shirts"}, models.FilterSelection{}, "")
	assert.Equal(t, []string{"m-tee"}, ids(mens))

	kids := RenderCatalog(catalog, models.PageContext{MainCategory: models.KidsWear, Category: "t-shirts"}, models.FilterSelection{}, "")
	assert.Equal(t, []string{"k-tee"}, ids(kids))
}

func TestRenderCatalogSidebarOverridesBanner(t *testing.T) {
	catalog := pipelineCatalog()
	got := RenderCatalog(catalog,
		models.PageContext{MainCategory: models.WomensWear, Category: "jeans"},
		models.FilterSelection{Category: "kurtis"}, "")

	assert.Equal(t, []string{"kurti"}, ids(got))
}

func TestRenderCatalogRescuesWomensJeans(t *testing.T) {
	catalog := pipelineCatalog()
	for i := range catalog {
		if catalog[i].ID == "w-jeans" {
			// department drifted but the name still says women
			catalog[i].MainCategory = models.MensWear
		}
	}

	got := RenderCatalog(catalog, models.PageContext{MainCategory: models.WomensWear, Category: "jeans"}, models.FilterSelection{}, "")
	assert.Equal(t, []string{"w-jeans"}, ids(got))
}

func TestRenderCatalogSidebarFilters(t *testing.T) {
	catalog := pipelineCatalog()

	t.Run("size", func(t *testing.T) {
		got := RenderCatalog(catalog, models.PageContext{}, models.FilterSelection{Size: "l"}, "")
		assert.ElementsMatch(t, []string{"m-tee", "kurti"}, ids(got))
	})

	t.Run("size type", func(t *testing.T) {
		got := RenderCatalog(catalog, models.PageContext{}, models.FilterSelection{SizeType: "numeric"}, "")
		assert.ElementsMatch(t, []string{"m-jeans", "w-jeans"}, ids(got))

		got = RenderCatalog(catalog, models.PageContext{}, models.FilterSelection{SizeType: "age"}, "")
		assert.Equal(t, []string{"k-tee"}, ids(got))
	})

	t.Run("color substring", func(t *testing.T) {
		got := RenderCatalog(catalog, models.PageContext{}, models.FilterSelection{Color: "navy"}, "")
		assert.Equal(t, []string{"m-tee"}, ids(got))
	})

	t.Run("price range", func(t *testing.T) {
		got := RenderCatalog(catalog, models.PageContext{}, models.FilterSelection{PriceRange: "500-1500"}, "")
		assert.ElementsMatch(t, []string{"m-tee", "kurti"}, ids(got))

		got = RenderCatalog(catalog, models.PageContext{}, models.FilterSelection{PriceRange: "2000+"}, "")
		assert.ElementsMatch(t, []string{"m-jeans", "w-jeans"}, ids(got))
	})
}

func TestRenderCatalogSort(t *testing.T) {
	catalog := pipelineCatalog()

	low := RenderCatalog(catalog, models.PageContext{}, models.FilterSelection{}, models.SortPriceLow)
	assert.Equal(t, []string{"k-tee", "w-tee", "m-tee", "kurti", "w-jeans", "m-jeans"}, ids(low))

	rated := RenderCatalog(catalog, models.PageContext{}, models.FilterSelection{}, models.SortRating)
	assert.Equal(t, "kurti", rated[0].ID)

	featured := RenderCatalog(catalog, models.PageContext{}, models.FilterSelection{}, models.SortFeatured)
	assert.Equal(t, []string{"w-tee", "m-tee", "k-tee", "kurti", "m-jeans", "w-jeans"}, ids(featured))
}

func TestRenderCatalogDoesNotMutateInput(t *testing.T) {
	catalog := pipelineCatalog()
	before := ids(catalog)

	RenderCatalog(catalog, models.PageContext{MainCategory: models.MensWear}, models.FilterSelection{}, models.SortName)

	assert.Equal(t, before, ids(catalog))
}

func TestParsePriceRange(t *testing.T) {
	min, max, ok := ParsePriceRange("500-1000")
	assert.True(t, ok)
	assert.Equal(t, 500.0, min)
	assert.Equal(t, 1000.0, max)

	min, _, ok = ParsePriceRange("3000+")
	assert.True(t, ok)
	assert.Equal(t, 3000.0, min)

	for _, bad := range []string{"", "cheap", "1000-500", "10-"} {
		_, _, ok := ParsePriceRange(bad)
		assert.False(t, ok, bad)
	}
}

func TestSizeTypeOf(t *testing.T) {
	assert.Equal(t, models.SizeTypeAlpha, SizeTypeOf("xl"))
	assert.Equal(t, models.SizeTypeAlpha, SizeTypeOf("XXS"))
	assert.Equal(t, models.SizeTypeAlpha, SizeTypeOf("Free Size"))
	assert.Equal(t, models.SizeTypeNumeric, SizeTypeOf("32"))
	assert.Equal(t, models.SizeTypeAge, SizeTypeOf("2-3Y"))
	assert.Equal(t, models.SizeTypeAge, SizeTypeOf("6-12M"))
	assert.Equal(t, "", SizeTypeOf("one"))
}
