package offer_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
)

// GetActiveOffer godoc
// @Summary Get the running offer
// @Description Returns the catalog-wide offer currently applied, or null
// @Tags CMS - Offers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.ActiveOffer}
// @Router /admin/offers/active [get]
func GetActiveOffer(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Active offer fetched successfully", services.GetCatalogService().ActiveOffer()))
}
