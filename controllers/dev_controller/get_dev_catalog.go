package dev_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
)

// GetDevCatalog godoc
// @Summary Get the shared dev catalog
// @Description Returns the shared catalog snapshot with its version and timestamp
// @Tags Dev
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CatalogSnapshot}
// @Failure 502 {object} models.ApiResponse
// @Router /dev/catalog [get]
func GetDevCatalog(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	snap, err := services.GetCatalogService().RemoteSnapshot(ctx)
	if err != nil {
		log.Printf("[dev.catalog] load failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to load dev catalog"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dev catalog fetched successfully", snap))
}
