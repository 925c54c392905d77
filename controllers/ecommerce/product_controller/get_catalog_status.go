package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
)

// GetCatalogStatus godoc
// @Summary Get catalog status
// @Description Where the catalog was loaded from, its size, the last hydration error and the running offer
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/catalog/status [get]
func GetCatalogStatus(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog status fetched successfully", services.GetCatalogService().Status()))
}
