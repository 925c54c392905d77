package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/developer2iverto/Dresscollections-sub000/cache"
	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description Departments with their subcategories and active product counts
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	if tree, ok := catalog_cache.GetTree(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", tree))
		return
	}

	tree := services.BuildCategoryTree(services.GetCatalogService().List())
	catalog_cache.SetTree(tree)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", tree))
}
