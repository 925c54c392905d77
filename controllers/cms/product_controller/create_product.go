package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Adds a product to the catalog. Department and gender are resolved from the category and name when not given
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductInput true "Product details"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[product.create] invalid request: %v", err)
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, err))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product := services.GetCatalogService().Add(ctx, req)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
