package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
)

// GetLowStockProducts godoc
// @Summary List low-stock products
// @Description Products whose stock is at or under their low-stock threshold
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Router /admin/products/low-stock [get]
func GetLowStockProducts(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Low stock products fetched successfully", services.GetCatalogService().LowStock()))
}
