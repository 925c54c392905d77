package offer_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
)

// ApplyOffer godoc
// @Summary Apply an offer to the whole catalog
// @Description Discounts every product from its pre-promotion price. Only one offer may run at a time; reset before applying another
// @Tags CMS - Offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param offer body models.ApplyOfferRequest true "Offer"
// @Success 200 {object} models.ApiResponse{data=models.ActiveOffer}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "An offer is already active"
// @Router /admin/offers/apply [post]
func ApplyOffer(c *gin.Context) {
	var req models.ApplyOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, err))
		return
	}
	if req.DiscountType == models.DiscountPercentage && req.DiscountValue > 100 {
		resp := models.ErrorResponse(c, "Invalid request")
		resp.Details = []models.ErrorDetail{{Field: "DiscountValue", Msg: "discountValue must be at most 100 for percentage offers"}}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	active, err := services.GetCatalogService().ApplyOffer(ctx, models.Offer{
		ID:            req.ID,
		Title:         req.Title,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
	})
	if errors.Is(err, services.ErrPromotionActive) {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
		return
	}
	if err != nil {
		log.Printf("[offers.apply] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to apply offer"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Offer applied successfully", active))
}
