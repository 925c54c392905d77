package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Runs the storefront filter pipeline over the active catalog and returns one page of product cards
// @Tags store
// @Produce json
// @Param search query string false "Free-text search over name, brand, category and department"
// @Param mainCategory query string false "Department page" Enums(mens-wear, womens-wear, kids-wear)
// @Param category query string false "Banner subcategory"
// @Param filterCategory query string false "Sidebar subcategory"
// @Param size query string false "Size label"
// @Param sizeType query string false "Size family" Enums(alpha, numeric, age)
// @Param color query string false "Color name (substring)"
// @Param priceRange query string false "Price range, min-max or min+"
// @Param sort query string false "Sort key" Enums(featured, price-low, price-high, rating, name) default(featured)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	var page models.PageContext
	var filters models.FilterSelection
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, err))
		return
	}
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, err))
		return
	}

	catalog := services.GetCatalogService().List()
	result := services.RenderCatalog(catalog, page, filters, c.DefaultQuery("sort", models.SortFeatured))

	pageNum, limit := parsePagination(c)
	cards, meta := paginate(result, pageNum, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", cards, meta))
}
