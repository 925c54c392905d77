package offer_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
)

// ResetOffers godoc
// @Summary Reset offers
// @Description Restores every product to its pre-promotion price and sale flags
// @Tags CMS - Offers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.ActiveOffer}
// @Router /admin/offers/reset [post]
func ResetOffers(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	previous := services.GetCatalogService().ResetOffers(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Offers reset successfully", previous))
}
