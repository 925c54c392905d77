package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
)

// GetProductStats godoc
// @Summary Get product statistics
// @Description Returns overall product stats including low-stock counts and products per department
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.ProductStats}
// @Router /admin/products/stats [get]
func GetProductStats(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product stats fetched successfully", services.GetCatalogService().Stats()))
}
