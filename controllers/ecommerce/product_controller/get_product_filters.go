package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/developer2iverto/Dresscollections-sub000/cache"
	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
)

// GetProductFilters godoc
// @Summary Get available product filters
// @Description Categories, sizes and colors with counts, the price range and availability of the active catalog
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/products/filters [get]
func GetProductFilters(c *gin.Context) {
	if facets, ok := catalog_cache.GetFacets(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters fetched successfully", facets))
		return
	}

	facets := services.BuildFilterFacets(services.GetCatalogService().List())
	catalog_cache.SetFacets(facets)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters fetched successfully", facets))
}
