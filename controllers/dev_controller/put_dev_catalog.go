package dev_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
	"github.com/developer2iverto/Dresscollections-sub000/stores"
)

// PutDevCatalog godoc
// @Summary Replace the shared dev catalog
// @Description Replaces the whole catalog. A snapshot whose updatedAt is older than the stored one is refused
// @Tags Dev
// @Accept json
// @Produce json
// @Param catalog body models.PutCatalogRequest true "Full product list"
// @Success 200 {object} models.ApiResponse{data=models.CatalogSnapshot}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Stale snapshot"
// @Failure 502 {object} models.ApiResponse
// @Router /dev/catalog [put]
func PutDevCatalog(c *gin.Context) {
	var req models.PutCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, err))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	saved, err := services.GetCatalogService().ReplaceAll(ctx, req.Products, req.UpdatedAt)
	if errors.Is(err, stores.ErrStaleSnapshot) {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
		return
	}
	if err != nil {
		log.Printf("[dev.catalog] replace failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to save dev catalog"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dev catalog saved", saved))
}
